package fitbit

import "time"

// Config holds the Fitbit application credentials and endpoints.
//
// ClientID and ClientSecret are intentionally not marked required: the relay
// starts without them and reports the misconfiguration to callers of
// /start-oauth, matching how a misconfigured provider app behaves.
// The endpoint URLs are overridable so tests can point the client at a local
// server.
type Config struct {
	ClientID      string        `env:"FITBIT_CLIENT_ID"`
	ClientSecret  string        `env:"FITBIT_CLIENT_SECRET"`
	RedirectURL   string        `env:"FITBIT_REDIRECT_URL"`
	Scope         string        `env:"FITBIT_SCOPE" envDefault:"heartrate activity profile"`
	TokenLifetime int           `env:"FITBIT_TOKEN_LIFETIME" envDefault:"604800"` // seconds, sent as expires_in
	AuthURL       string        `env:"FITBIT_AUTH_URL" envDefault:"https://www.fitbit.com/oauth2/authorize"`
	TokenURL      string        `env:"FITBIT_TOKEN_URL" envDefault:"https://api.fitbit.com/oauth2/token"`
	APIBaseURL    string        `env:"FITBIT_API_BASE_URL" envDefault:"https://api.fitbit.com"`
	HTTPTimeout   time.Duration `env:"FITBIT_HTTP_TIMEOUT" envDefault:"10s"`
}
