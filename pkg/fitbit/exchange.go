package fitbit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/fitrelay/pkg/logger"
)

// maxErrorBody caps how much of an upstream error body is retained.
const maxErrorBody = 64 << 10

// Token is the credential pair issued by a successful code exchange.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ExchangeCode trades a one-time authorization code for tokens. The request
// authenticates with HTTP Basic (client_id:client_secret) and a form-encoded
// body, per the provider's token endpoint contract. A non-200 answer is
// returned as *ExchangeError; an undecodable 200 body wraps
// ErrMalformedResponse.
func (c *Client) ExchangeCode(ctx context.Context, code string) (Token, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return Token{}, ErrNotConfigured
	}

	form := url.Values{
		"client_id":    {c.cfg.ClientID},
		"grant_type":   {"authorization_code"},
		"redirect_uri": {c.cfg.RedirectURL},
		"code":         {code},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, fmt.Errorf("fitbit: build token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Token{}, fmt.Errorf("fitbit: token request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.ErrorContext(ctx, "token exchange rejected",
			logger.UpstreamStatus(resp.StatusCode),
			logger.Component("fitbit"),
		)
		return Token{}, &ExchangeError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var token Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return Token{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if token.AccessToken == "" {
		return Token{}, fmt.Errorf("%w: missing access_token", ErrMalformedResponse)
	}

	return token, nil
}
