package bootstrap

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokuwaitgel/smart-locker-panel/config"
	"github.com/bokuwaitgel/smart-locker-panel/internal/observability/metrics"
	"github.com/bokuwaitgel/smart-locker-panel/internal/testutil"
)

const testCSRF = "bootstrap-csrf"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(apiURL string) *config.AppConfig {
	cfg := &config.AppConfig{}
	cfg.Backend.BaseURL = apiURL
	cfg.Auth.Backend = config.SessionBackendCookie
	cfg.Sanitize()
	return cfg
}

// loginBackend answers the backend login endpoint with a freshly minted admin token.
func loginBackend(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	token := testutil.AdminToken(t, time.Now())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))
	t.Cleanup(srv.Close)
	return srv, token
}

func loginRequest(password string) *http.Request {
	form := url.Values{"email": {"admin@example.com"}, "password": {password}, "csrf_token": {testCSRF}}
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(&http.Cookie{Name: "csrf_token", Value: testCSRF})
	return r
}

func findCookie(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestBuildPanel_RequiresConfig(t *testing.T) {
	_, err := BuildPanel(PanelDeps{})
	require.Error(t, err)
}

func TestBuildPanel_InvalidBaseURL(t *testing.T) {
	cfg := testConfig("ftp://backend")
	_, err := BuildPanel(PanelDeps{Config: cfg, Logger: quietLogger()})
	require.Error(t, err)
}

func TestBuildPanel_RedisBackendNeedsClient(t *testing.T) {
	cfg := testConfig("http://localhost:3001")
	cfg.Auth.Backend = config.SessionBackendRedis
	_, err := BuildPanel(PanelDeps{Config: cfg, Logger: quietLogger()})
	require.ErrorContains(t, err, "redis")
}

func TestBuildPanel_Health(t *testing.T) {
	h, err := BuildPanel(PanelDeps{Config: testConfig("http://localhost:3001"), Logger: quietLogger()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestBuildPanel_CookieLogin(t *testing.T) {
	srv, token := loginBackend(t)
	h, err := BuildPanel(PanelDeps{Config: testConfig(srv.URL), Logger: quietLogger()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, loginRequest("secret"))
	res := rec.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/dashboard", res.Header.Get("Location"))
	c := findCookie(res, "token")
	require.NotNil(t, c)
	assert.Equal(t, token, c.Value)
}

func TestBuildPanel_RejectedLogin(t *testing.T) {
	srv, _ := loginBackend(t)
	h, err := BuildPanel(PanelDeps{Config: testConfig(srv.URL), Logger: quietLogger()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, loginRequest("wrong"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestBuildPanel_MetricsEndpoint(t *testing.T) {
	srv, _ := loginBackend(t)
	cfg := testConfig(srv.URL)
	cfg.Observability.Metrics.Enabled = true
	cfg.Observability.Metrics.Token = "scrape"
	h, err := BuildPanel(PanelDeps{Config: cfg, Metrics: metrics.NewPrometheus(), Logger: quietLogger()})
	require.NoError(t, err)

	h.ServeHTTP(httptest.NewRecorder(), loginRequest("secret"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.Header.Set("Authorization", "Bearer scrape")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `locker_panel_session_events_total{event="login"} 1`)
	assert.Contains(t, rec.Body.String(), "locker_panel_gateway_requests_total")
}

func TestBuildPanel_MetricsDisabled(t *testing.T) {
	h, err := BuildPanel(PanelDeps{
		Config:  testConfig("http://localhost:3001"),
		Metrics: metrics.NewPrometheus(),
		Logger:  quietLogger(),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuildPanel_RedisLogin(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	srv, token := loginBackend(t)
	cfg := testConfig(srv.URL)
	cfg.Auth.Backend = config.SessionBackendRedis
	cfg.Redis.KeyPrefix = "locker-panel-test:" + t.Name() + ":"

	h, err := BuildPanel(PanelDeps{Config: cfg, Redis: client, Logger: quietLogger()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, loginRequest("secret"))
	res := rec.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	c := findCookie(res, "token")
	require.NotNil(t, c)
	assert.NotEqual(t, token, c.Value)

	stored, err := client.Get(context.Background(), cfg.Redis.KeyPrefix+c.Value).Result()
	require.NoError(t, err)
	assert.Equal(t, token, stored)
	client.Del(context.Background(), cfg.Redis.KeyPrefix+c.Value)
}
