package fitbit

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
)

// Client talks to the Fitbit OAuth and Web API endpoints.
// It holds no token state; callers pass the access token per request.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the client during construction.
type Option func(*Client)

// WithLogger sets a custom logger for the client.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient overrides the HTTP client used for outbound calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a Fitbit client. Outbound calls are bounded by the configured
// timeout; the default logger discards everything.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthCodeURL builds the consent-screen URL the user is sent to. The URL
// carries response_type=code, client_id, redirect_uri, scope, and the
// requested token lifetime as expires_in. No state parameter is sent: the
// relay serves a single local user and its callback does not validate state.
func (c *Client) AuthCodeURL() (string, error) {
	if c.cfg.ClientID == "" {
		return "", ErrNotConfigured
	}

	oc := &oauth2.Config{
		ClientID:    c.cfg.ClientID,
		RedirectURL: c.cfg.RedirectURL,
		Scopes:      strings.Fields(c.cfg.Scope),
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.cfg.AuthURL,
			TokenURL: c.cfg.TokenURL,
		},
	}

	return oc.AuthCodeURL("", oauth2.SetAuthURLParam("expires_in", strconv.Itoa(c.cfg.TokenLifetime))), nil
}
