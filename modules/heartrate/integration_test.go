package heartrate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fitrelay/modules/heartrate"
	"github.com/dmitrymomot/fitrelay/pkg/fitbit"
	"github.com/dmitrymomot/fitrelay/pkg/tokenstore"
)

// fakeProvider stands in for Fitbit's token and resource endpoints.
type fakeProvider struct {
	srv *httptest.Server

	tokenStatus int
	tokenBody   string
	dataStatus  int
	dataBody    string

	lastAuth string
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	fp := &fakeProvider{
		tokenStatus: http.StatusOK,
		tokenBody:   `{"access_token":"live-access","refresh_token":"live-refresh"}`,
		dataStatus:  http.StatusOK,
		dataBody:    `{"activities-heart-intraday":{"dataset":[{"time":"08:00:00","value":72}]}}`,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(fp.tokenStatus)
		w.Write([]byte(fp.tokenBody))
	})
	mux.HandleFunc("/1/user/-/", func(w http.ResponseWriter, r *http.Request) {
		fp.lastAuth = r.Header.Get("Authorization")
		w.WriteHeader(fp.dataStatus)
		w.Write([]byte(fp.dataBody))
	})
	fp.srv = httptest.NewServer(mux)
	t.Cleanup(fp.srv.Close)
	return fp
}

func newLiveRelay(t *testing.T, fp *fakeProvider) (*tokenstore.Store, http.Handler) {
	t.Helper()
	client := fitbit.New(fitbit.Config{
		ClientID:      "23ABCD",
		ClientSecret:  "s3cret",
		RedirectURL:   "http://localhost:8081/exchange-token",
		Scope:         "heartrate activity profile",
		TokenLifetime: 604800,
		AuthURL:       fp.srv.URL + "/oauth2/authorize",
		TokenURL:      fp.srv.URL + "/oauth2/token",
		APIBaseURL:    fp.srv.URL,
		HTTPTimeout:   5 * time.Second,
	})
	tokens := tokenstore.New()
	svc := heartrate.NewService(heartrate.Config{FrontendBaseURL: frontendURL}, client, tokens)
	return tokens, svc.Handler()
}

func TestAuthorizationJourney(t *testing.T) {
	t.Parallel()

	fp := newFakeProvider(t)
	tokens, h := newLiveRelay(t, fp)

	// 1. The front-end asks for the consent URL.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/start-oauth", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var start heartrate.StartOAuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &start))
	authURL, err := url.Parse(start.AuthorizationURL)
	require.NoError(t, err)
	assert.Equal(t, "code", authURL.Query().Get("response_type"))

	// 2. The provider redirects back with a code; the relay exchanges it.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exchange-token?code=granted", nil))
	q := redirectQuery(t, rec)
	require.Equal(t, "true", q.Get("oauth_success"))
	assert.Equal(t, tokenstore.Tokens{Access: "live-access", Refresh: "live-refresh"}, tokens.Snapshot())

	// 3. The held token gates the heart-rate query.
	rec = postHeartRate(t, h, `{"date":"2025-01-02","startTime":"08:00","endTime":"08:01"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer live-access", fp.lastAuth)

	var result heartrate.HeartRateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.AverageHR)
	assert.InDelta(t, 72.0, *result.AverageHR, 0.001)
}

func TestAuthorizationJourneyTokenRevoked(t *testing.T) {
	t.Parallel()

	fp := newFakeProvider(t)
	tokens, h := newLiveRelay(t, fp)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exchange-token?code=granted", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, tokenstore.Tokens{Access: "live-access", Refresh: "live-refresh"}, tokens.Snapshot())

	// The provider starts rejecting the token; the relay drops the pair.
	fp.dataStatus = http.StatusUnauthorized
	fp.dataBody = `{"errors":[{"errorType":"expired_token"}]}`

	rec = postHeartRate(t, h, `{"date":"2025-01-02","startTime":"08:00","endTime":"08:01"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, tokenstore.Tokens{}, tokens.Snapshot())

	// The next query short-circuits without reaching the provider.
	fp.lastAuth = ""
	rec = postHeartRate(t, h, `{"date":"2025-01-02","startTime":"08:00","endTime":"08:01"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, fp.lastAuth)
}

func TestExchangeFailurePassesStatusThrough(t *testing.T) {
	t.Parallel()

	fp := newFakeProvider(t)
	fp.tokenStatus = http.StatusBadRequest
	fp.tokenBody = `{"errors":[{"errorType":"invalid_grant"}]}`

	tokens, h := newLiveRelay(t, fp)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exchange-token?code=stale", nil))

	q := redirectQuery(t, rec)
	assert.Equal(t, "false", q.Get("oauth_success"))
	assert.True(t, strings.HasSuffix(q.Get("error_message"), "400"))
	assert.Equal(t, tokenstore.Tokens{}, tokens.Snapshot())
}
