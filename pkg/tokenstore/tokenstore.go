// Package tokenstore holds the relay's OAuth credentials in process memory.
//
// The relay serves a single user, so there is exactly one token pair per
// process. The store makes concurrent access from HTTP handlers well-defined;
// it deliberately does not persist anything, track expiry, or refresh tokens.
// Invalidation is reactive: handlers call Clear when the provider reports the
// credential invalid.
package tokenstore

import "sync"

// Tokens is a snapshot of the credentials held by the store.
// Empty fields mean "not authenticated".
type Tokens struct {
	Access  string
	Refresh string
}

// Store is a mutex-guarded holder for a single OAuth token pair.
// The zero value is empty but must not be copied after first use;
// construct with New and share the pointer.
type Store struct {
	mu     sync.RWMutex
	tokens Tokens
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Set stores both tokens atomically, replacing any previous pair.
func (s *Store) Set(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = Tokens{Access: access, Refresh: refresh}
}

// Clear drops both tokens. A subsequent AccessToken reports unauthenticated
// until the next successful exchange.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = Tokens{}
}

// AccessToken returns the held access token and whether one is present.
func (s *Store) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Access, s.tokens.Access != ""
}

// Snapshot returns a copy of the current token pair.
func (s *Store) Snapshot() Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}
