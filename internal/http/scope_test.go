package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_BackendUnauthorizedSendsBrowserToLogin(t *testing.T) {
	var calls atomic.Int32
	env := newTestEnv(t, withBackend(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})))

	// The dashboard fans out to two stats endpoints; both answer 401.
	rec := env.do(request{path: "/dashboard", token: env.adminToken()})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fdashboard", rec.Header().Get("Location"))
	assert.NotContains(t, rec.Body.String(), "Active containers")
	assert.Positive(t, calls.Load())

	tokenCookies := 0
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			tokenCookies++
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
		}
	}
	assert.Equal(t, 1, tokenCookies, "token cleared exactly once")
}

func TestScope_BackendUnauthorizedRedirectsHTMX(t *testing.T) {
	env := newTestEnv(t, withBackend(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})))

	rec := env.do(request{
		path:   "/dashboard/containers",
		token:  env.adminToken(),
		htmx:   true,
		header: map[string]string{"Hx-Current-Url": "http://panel.local/dashboard/containers"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fdashboard%2Fcontainers", rec.Header().Get("Hx-Redirect"))
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Hx-Trigger"), "buffered headers are dropped with the body")
}

func TestScope_SendsBearerTokenToBackend(t *testing.T) {
	var gotAuth atomic.Value
	env := newTestEnv(t, withBackend(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":1,"boardId":"B-100","location":"Lobby","status":"ACTIVE"}]}`))
	})))

	token := env.adminToken()
	rec := env.do(request{path: "/dashboard/containers", token: token})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "B-100")
	assert.Equal(t, "Bearer "+token, gotAuth.Load())
	assert.Nil(t, responseCookie(rec, "token"), "a valid session is left alone")
}

func TestScope_AnonymousNeverCallsBackend(t *testing.T) {
	var calls atomic.Int32
	env := newTestEnv(t, withBackend(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	})))

	rec := env.do(request{path: "/dashboard/lockers?boardId=B1"})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fdashboard%2Flockers%3FboardId%3DB1", rec.Header().Get("Location"))
	assert.Zero(t, calls.Load())
}

func TestScope_MalformedTokenIsCleared(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(request{path: "/dashboard", token: "not-a-jwt"})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	c := responseCookie(rec, "token")
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
}

func TestLoginNavigation_KeepsFirstTarget(t *testing.T) {
	var nav loginNavigation
	nav.Navigate(context.Background(), "/login")
	nav.Navigate(context.Background(), "/elsewhere")
	assert.Equal(t, "/login", nav.Target())
}

func TestCaptureWriter_FlushTo(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := newCaptureWriter(rec)
	cw.Header().Set("X-Test", "1")
	cw.WriteHeader(http.StatusAccepted)
	_, err := cw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Empty(t, rec.Body.String(), "nothing reaches the client before flush")

	cw.flushTo(rec)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Test"))
	assert.Equal(t, "hello", rec.Body.String())
}

func TestScopeConfig_ValidatePanics(t *testing.T) {
	assert.PanicsWithValue(t, "ScopeConfig.Transport is required", func() { Scope(ScopeConfig{}) })
}
