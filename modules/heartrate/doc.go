// Package heartrate is the relay's HTTP surface: it starts the Fitbit OAuth
// flow, receives the provider's callback, and proxies one authenticated
// heart-rate query back to the caller.
//
// The module owns no provider logic of its own. It composes a Provider (the
// Fitbit client), a tokenstore.Store holding the process's single token
// pair, and the front-end base URL used for post-auth redirects:
//
//	relay := heartrate.NewService(cfg, fitbitClient, tokens)
//	r.Mount("/", relay.Handler())
//
// Routes: GET /start-oauth, GET /exchange-token (provider callback),
// POST /get-heart-rate.
package heartrate
