// Package fitbit implements the provider side of the relay: building the
// authorization URL, exchanging an authorization code for tokens, and
// querying the intraday heart-rate endpoint.
//
// The client is stateless with respect to credentials; token storage lives in
// pkg/tokenstore and is wired together by the heartrate module. Upstream
// failures surface as typed errors (*ExchangeError, *APIError) carrying the
// provider's status code and body, so callers can pass them through or react
// to a 401 by invalidating held tokens.
package fitbit
