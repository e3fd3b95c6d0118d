package fitbit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/fitrelay/pkg/logger"
)

// HeartRateSample is one intraday measurement. Value stays numeric and is
// otherwise passed through opaque.
type HeartRateSample struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// intradayResponse mirrors the slice of the provider payload the relay needs.
type intradayResponse struct {
	Intraday struct {
		Dataset []HeartRateSample `json:"dataset"`
	} `json:"activities-heart-intraday"`
}

// IntradayHeartRate fetches 1-second resolution heart-rate samples for the
// given date and time window, authenticated with the supplied bearer token.
// A non-200 answer is returned as *APIError with the upstream status and
// body; a 401 signals the token is no longer valid.
func (c *Client) IntradayHeartRate(ctx context.Context, accessToken, date, startTime, endTime string) ([]HeartRateSample, error) {
	u := fmt.Sprintf("%s/1/user/-/activities/heart/date/%s/1d/1sec/time/%s/%s.json",
		c.cfg.APIBaseURL, date, startTime, endTime)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("fitbit: build heart rate request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fitbit: heart rate request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.ErrorContext(ctx, "heart rate request rejected",
			logger.UpstreamStatus(resp.StatusCode),
			logger.Component("fitbit"),
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed intradayResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return parsed.Intraday.Dataset, nil
}
