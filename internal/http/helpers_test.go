package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bokuwaitgel/smart-locker-panel/internal/adapters/cookiestore"
	"github.com/bokuwaitgel/smart-locker-panel/internal/adapters/jwtclaims"
	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
	"github.com/bokuwaitgel/smart-locker-panel/internal/data"
	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
	"github.com/bokuwaitgel/smart-locker-panel/internal/mocks"
	authmocks "github.com/bokuwaitgel/smart-locker-panel/internal/mocks/auth"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
	"github.com/bokuwaitgel/smart-locker-panel/internal/service"
	"github.com/bokuwaitgel/smart-locker-panel/internal/testutil"
)

const testCSRF = "test-csrf-token"

// testEnv is a router wired like production, with either gomock
// repositories or the real data layer talking to an httptest backend.
type testEnv struct {
	t       *testing.T
	router  http.Handler
	backend *httptest.Server

	Containers *mocks.MockContainerRepository
	Lockers    *mocks.MockLockerRepository
	Deliveries *mocks.MockDeliveryRepository
	Banners    *mocks.MockBannerRepository
	Login      *authmocks.StaticLoginProvider
}

type envOption func(*envConfig)

type envConfig struct {
	backendHandler http.Handler // real data layer when set
	router         func(*RouterServices)
}

// withBackend routes repository calls through the gateway to h.
func withBackend(h http.Handler) envOption {
	return func(c *envConfig) { c.backendHandler = h }
}

func withRouter(f func(*RouterServices)) envOption {
	return func(c *envConfig) { c.router = f }
}

// requireTemplates skips when the template tree is not reachable from the test's working directory.
func requireTemplates(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); err != nil {
		t.Skipf("templates not found at %s: %v", TemplatePathFromTest, err)
	}
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	requireTemplates(t)

	var cfg envConfig
	for _, o := range opts {
		o(&cfg)
	}

	backendHandler := cfg.backendHandler
	if backendHandler == nil {
		backendHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	}
	backend := httptest.NewServer(backendHandler)
	t.Cleanup(backend.Close)

	transport, err := gateway.NewTransport(gateway.TransportOptions{
		BaseURL:    backend.URL,
		LoginPath:  "/login",
		HTTPClient: backend.Client(),
		Logger:     discardLogger(),
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	env := &testEnv{
		t:          t,
		backend:    backend,
		Containers: mocks.NewMockContainerRepository(ctrl),
		Lockers:    mocks.NewMockLockerRepository(ctrl),
		Deliveries: mocks.NewMockDeliveryRepository(ctrl),
		Banners:    mocks.NewMockBannerRepository(ctrl),
		Login: &authmocks.StaticLoginProvider{
			Email:    "admin@example.com",
			Password: "secret",
			Token:    testutil.AdminToken(t, time.Now()),
		},
	}

	newBackend := func(gateway.Doer) core.Backend {
		return core.Backend{
			Containers: env.Containers,
			Lockers:    env.Lockers,
			Deliveries: env.Deliveries,
			Banners:    env.Banners,
		}
	}
	if cfg.backendHandler != nil {
		newBackend = data.NewBackend
	}

	messages, err := service.NewMessageExtractor("")
	require.NoError(t, err)

	services := RouterServices{
		Scope: ScopeConfig{
			Transport: transport,
			Tokens: func(w http.ResponseWriter, r *http.Request) ports.TokenStore {
				return cookiestore.New(w, r, cookiestore.Options{Name: "token"})
			},
			Decoder:    jwtclaims.Decoder{},
			NewBackend: newBackend,
			Messages:   messages,
		},
		Auth:           service.NewAuthService(service.AuthServiceOptions{Provider: env.Login, Logger: discardLogger()}),
		LoginPath:      "/login",
		LoginRateLimit: -1,
		MaxUploadBytes: 1 << 20,
		TemplateFS:     os.DirFS(TemplatePathFromTest),
		Logger:         discardLogger(),
	}
	if cfg.router != nil {
		cfg.router(&services)
	}
	env.router = NewRouter(services)
	return env
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// request describes one call against the router.
type request struct {
	method  string
	path    string
	form    url.Values
	body    io.Reader
	ctype   string
	token   string // value of the token cookie
	htmx    bool
	accept  string
	header  map[string]string
	cookies []*http.Cookie
}

func (e *testEnv) do(req request) *httptest.ResponseRecorder {
	e.t.Helper()
	method := req.method
	if method == "" {
		method = http.MethodGet
	}
	body := req.body
	ctype := req.ctype
	if req.form != nil {
		body = strings.NewReader(req.form.Encode())
		ctype = "application/x-www-form-urlencoded"
	}

	r := httptest.NewRequest(method, req.path, body)
	if ctype != "" {
		r.Header.Set("Content-Type", ctype)
	}
	r.Header.Set("Accept", "text/html")
	if req.accept != "" {
		r.Header.Set("Accept", req.accept)
	}
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRF})
	if method != http.MethodGet && method != http.MethodHead {
		r.Header.Set(DefaultCSRFHeaderName, testCSRF)
	}
	if req.token != "" {
		r.AddCookie(&http.Cookie{Name: "token", Value: req.token})
	}
	if req.htmx {
		r.Header.Set("HX-Request", "true")
	}
	for k, v := range req.header {
		r.Header.Set(k, v)
	}
	for _, c := range req.cookies {
		r.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, r)
	return rec
}

func (e *testEnv) adminToken() string { return testutil.AdminToken(e.t, time.Now()) }
func (e *testEnv) userToken() string  { return testutil.UserToken(e.t, time.Now()) }

// responseCookie returns the named Set-Cookie from rec, or nil.
func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
