package httpx

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/bokuwaitgel/smart-locker-panel/internal/core"
	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
	"github.com/bokuwaitgel/smart-locker-panel/internal/service"
)

// TokenStoreFunc builds the token store for one request/response pair.
// Stores must write cookies to w directly so they survive a discarded response.
type TokenStoreFunc func(w http.ResponseWriter, r *http.Request) ports.TokenStore

// ScopeConfig holds the process-wide pieces a RequestScope is built from.
type ScopeConfig struct {
	Transport  *gateway.Transport
	Tokens     TokenStoreFunc
	Decoder    ports.TokenDecoder
	NewBackend func(gateway.Doer) core.Backend
	Messages   *service.MessageExtractor
	TTL        time.Duration
	Logger     *slog.Logger
}

func (c ScopeConfig) validate() {
	switch {
	case c.Transport == nil:
		panic("ScopeConfig.Transport is required")
	case c.Tokens == nil:
		panic("ScopeConfig.Tokens is required")
	case c.Decoder == nil:
		panic("ScopeConfig.Decoder is required")
	case c.NewBackend == nil:
		panic("ScopeConfig.NewBackend is required")
	}
}

// build wires a fresh session, client and panel for one request.
func (c ScopeConfig) build(w http.ResponseWriter, r *http.Request, nav ports.Navigator) *RequestScope {
	session := service.NewSessionService(service.SessionServiceOptions{
		Tokens:  c.Tokens(w, r),
		Decoder: c.Decoder,
		TTL:     c.TTL,
		Logger:  c.Logger,
	})
	client := c.Transport.Bind(session, nav)
	return &RequestScope{
		Session: session,
		Client:  client,
		Panel: service.NewPanel(service.PanelOptions{
			Backend:  c.NewBackend(client),
			Messages: c.Messages,
			Logger:   c.Logger,
		}),
	}
}

// Scope returns a middleware that hydrates a RequestScope for every request
// and places it in the request context.
//
// The handler's response is buffered. When any backend call made while
// serving the request answers 401, the buffered response is dropped and the
// browser is sent to the login page instead; the cookie removal written by
// the session still reaches the client.
func Scope(cfg ScopeConfig) func(http.Handler) http.Handler {
	cfg.validate()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nav := &loginNavigation{}
			scope := cfg.build(w, r, nav)
			scope.Session.Hydrate(r.Context())

			cw := newCaptureWriter(w)
			next.ServeHTTP(cw, r.WithContext(WithRequestScope(r.Context(), scope)))

			if target := nav.Target(); target != "" {
				redirectToLogin(w, r, target)
				return
			}
			cw.flushTo(w)
		})
	}
}

// loginNavigation remembers the first navigation requested by the gateway.
type loginNavigation struct {
	mu     sync.Mutex
	target string
}

func (n *loginNavigation) Navigate(_ context.Context, target string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.target == "" {
		n.target = target
	}
}

// Target returns the requested navigation, or "" when none happened.
func (n *loginNavigation) Target() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.target
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		slog.Default().Debug("write captured response failed", "error", err)
	}
}
