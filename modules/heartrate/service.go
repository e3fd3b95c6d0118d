package heartrate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/fitrelay/pkg/fitbit"
	"github.com/dmitrymomot/fitrelay/pkg/handler"
	"github.com/dmitrymomot/fitrelay/pkg/logger"
	"github.com/dmitrymomot/fitrelay/pkg/tokenstore"
)

// Ensure the fitbit client satisfies the provider contract.
var _ Provider = (*fitbit.Client)(nil)

// Provider is the slice of the Fitbit client the module depends on.
type Provider interface {
	AuthCodeURL() (string, error)
	ExchangeCode(ctx context.Context, code string) (fitbit.Token, error)
	IntradayHeartRate(ctx context.Context, accessToken, date, startTime, endTime string) ([]fitbit.HeartRateSample, error)
}

// Service wires the provider client and the token store behind the relay's
// three HTTP operations.
type Service struct {
	provider    Provider
	tokens      *tokenstore.Store
	frontendURL string
	logger      *slog.Logger
}

// ServiceOption configures a Service during construction.
type ServiceOption func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates the heart-rate relay service. The logger discards by
// default.
func NewService(cfg Config, provider Provider, tokens *tokenstore.Store, opts ...ServiceOption) *Service {
	s := &Service{
		provider:    provider,
		tokens:      tokens,
		frontendURL: strings.TrimRight(cfg.FrontendBaseURL, "/"),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartOAuthResponse is the body of a successful /start-oauth call.
type StartOAuthResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
}

// HeartRateRequest is the caller-supplied query window. Fields are checked
// for presence only; date and time formats are passed through to the
// provider as-is.
type HeartRateRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// HeartRateResponse carries the aggregated result. AverageHR is omitted when
// the window holds no samples.
type HeartRateResponse struct {
	AverageHR *float64                 `json:"averageHr,omitempty"`
	Dataset   []fitbit.HeartRateSample `json:"dataset"`
	Message   string                   `json:"message"`
}

func (s *Service) handleStartOAuth() handler.HandlerFunc[struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		authURL, err := s.provider.AuthCodeURL()
		if err != nil {
			s.logger.ErrorContext(ctx, "cannot build authorization url",
				logger.Error(err),
				logger.Component("heartrate"),
			)
			return handler.Error(handler.NewHTTPError(http.StatusInternalServerError,
				"Fitbit client ID not configured on relay server"))
		}
		return handler.JSON(StartOAuthResponse{AuthorizationURL: authURL})
	}
}

// handleCallback is the redirect target registered with the provider. Every
// outcome is a redirect back to the front-end; failures are encoded in the
// error_message query parameter rather than a status code, since the caller
// is a browser navigation.
func (s *Service) handleCallback() handler.HandlerFunc[struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		code := ctx.Request().URL.Query().Get("code")
		if code == "" {
			s.logger.WarnContext(ctx, "authorization callback without code", logger.Component("heartrate"))
			return s.redirectFailure("No_code_from_Fitbit")
		}

		token, err := s.provider.ExchangeCode(ctx, code)
		if err != nil {
			var exchErr *fitbit.ExchangeError
			if errors.As(err, &exchErr) {
				return s.redirectFailure(fmt.Sprintf("Token_exchange_failed_%d", exchErr.StatusCode))
			}
			s.logger.ErrorContext(ctx, "token exchange failed",
				logger.Error(err),
				logger.Component("heartrate"),
			)
			return s.redirectFailure("Relay_server_error")
		}

		s.tokens.Set(token.AccessToken, token.RefreshToken)
		s.logger.InfoContext(ctx, "tokens obtained", logger.Component("heartrate"))

		return handler.Redirect(s.frontendURL + "?" + url.Values{"oauth_success": {"true"}}.Encode())
	}
}

func (s *Service) redirectFailure(tag string) handler.Response {
	q := url.Values{
		"oauth_success": {"false"},
		"error_message": {tag},
	}
	return handler.Redirect(s.frontendURL + "?" + q.Encode())
}

func (s *Service) handleHeartRate() handler.HandlerFunc[HeartRateRequest] {
	return func(ctx handler.Context, req HeartRateRequest) handler.Response {
		accessToken, ok := s.tokens.AccessToken()
		if !ok {
			return handler.Error(handler.
				NewHTTPError(http.StatusUnauthorized, "Not authenticated with Fitbit. Please authorize first.").
				WithDetails("Access token is missing on relay server."))
		}

		if req.Date == "" || req.StartTime == "" || req.EndTime == "" {
			return handler.Error(handler.NewHTTPError(http.StatusBadRequest,
				"Missing date, startTime, or endTime in request body"))
		}

		samples, err := s.provider.IntradayHeartRate(ctx, accessToken, req.Date, req.StartTime, req.EndTime)
		if err != nil {
			return s.heartRateError(ctx, err)
		}

		if len(samples) == 0 {
			return handler.JSON(HeartRateResponse{
				Dataset: []fitbit.HeartRateSample{},
				Message: "No heart rate data found in the given time window.",
			})
		}

		var sum float64
		for _, sample := range samples {
			sum += sample.Value
		}
		avg := math.Round(sum/float64(len(samples))*100) / 100

		return handler.JSON(HeartRateResponse{
			AverageHR: &avg,
			Dataset:   samples,
			Message:   fmt.Sprintf("Average HR from %s to %s on %s: %.2f bpm", req.StartTime, req.EndTime, req.Date, avg),
		})
	}
}

func (s *Service) heartRateError(ctx handler.Context, err error) handler.Response {
	var apiErr *fitbit.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized {
			// The provider rejected the token; drop the whole pair and force
			// re-authorization. No refresh attempt is made.
			s.tokens.Clear()
			s.logger.WarnContext(ctx, "access token invalidated by provider", logger.Component("heartrate"))
			return handler.Error(handler.
				NewHTTPError(http.StatusUnauthorized, "Fitbit token expired or invalid. Please re-authorize.").
				WithDetails(apiErr.Body))
		}
		return handler.Error(handler.
			NewHTTPError(apiErr.StatusCode, fmt.Sprintf("Fitbit API error: %d", apiErr.StatusCode)).
			WithDetails(apiErr.Body))
	}

	s.logger.ErrorContext(ctx, "heart rate fetch failed",
		logger.Error(err),
		logger.Component("heartrate"),
	)
	return handler.Error(handler.NewHTTPError(http.StatusInternalServerError,
		"Internal relay error while fetching heart rate"))
}
