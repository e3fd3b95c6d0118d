package fitbit

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates the Fitbit client ID or secret is missing.
	ErrNotConfigured = errors.New("fitbit: client credentials not configured")
	// ErrMalformedResponse indicates the provider returned a payload that
	// could not be decoded into the expected shape.
	ErrMalformedResponse = errors.New("fitbit: malformed provider response")
)

// ExchangeError is returned when the token endpoint answers with a non-200
// status. The upstream status and body are preserved for diagnostics.
type ExchangeError struct {
	StatusCode int
	Body       string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("fitbit: token exchange failed with status %d", e.StatusCode)
}

// APIError is returned when a Web API resource endpoint answers with a
// non-200 status. A 401 means the access token is no longer valid.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fitbit: api request failed with status %d", e.StatusCode)
}
