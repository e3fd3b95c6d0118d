package heartrate

// Config holds the relay-facing settings of the heart-rate module.
type Config struct {
	// FrontendBaseURL is where the browser is sent after the OAuth callback,
	// with oauth_success / error_message query parameters appended.
	FrontendBaseURL string `env:"FRONTEND_BASE_URL" envDefault:"http://localhost:3000"`
}
