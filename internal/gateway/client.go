// Package gateway is the single HTTP path to the locker backend. Every call
// carries the current bearer token, and a 401 from any endpoint ends the
// session and sends the consumer to the login page.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/oauth2"

	"github.com/bokuwaitgel/smart-locker-panel/internal/observability/metrics"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultLoginPath = "/login"
	maxResponseBytes = 10 << 20
)

// TransportOptions configures a Transport.
type TransportOptions struct {
	BaseURL string
	Timeout time.Duration
	// LoginPath is the navigation target after a 401.
	LoginPath string
	// CookieJar keeps backend cookies between calls. Only safe when one
	// Transport serves a single user (the CLI).
	CookieJar bool
	// HTTPClient overrides the instrumented default client (tests).
	HTTPClient *http.Client
	Metrics    metrics.Recorder
	Logger     *slog.Logger
}

// Transport is the process-wide half of the gateway: base address, HTTP
// client and instrumentation. Bind it to a session to make calls.
type Transport struct {
	base      *url.URL
	client    *http.Client
	loginPath string
	metrics   metrics.Recorder
	logger    *slog.Logger
}

// NewTransport validates the base URL and builds the shared HTTP client.
func NewTransport(opts TransportOptions) (*Transport, error) {
	raw := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("gateway base URL is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse gateway base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("gateway base URL must be http(s): %q", raw)
	}

	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if opts.CookieJar && client.Jar == nil {
		jar, jarErr := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if jarErr != nil {
			return nil, fmt.Errorf("create cookie jar: %w", jarErr)
		}
		client.Jar = jar
	}

	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = defaultLoginPath
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Transport{
		base:      base,
		client:    client,
		loginPath: loginPath,
		metrics:   metrics.OrNoop(opts.Metrics),
		logger:    logger.With("component", "gateway"),
	}, nil
}

// BaseURL returns the configured backend origin.
func (t *Transport) BaseURL() string { return t.base.String() }

// LoginPath returns the navigation target used after a 401.
func (t *Transport) LoginPath() string { return t.loginPath }

// Session is what the gateway needs from the session store: a fresh token
// read per call and a way to end the session.
type Session interface {
	Token(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
}

// Bind returns a Client for one consumer. nav receives the login navigation
// at most once for the lifetime of the Client.
func (t *Transport) Bind(session Session, nav ports.Navigator) *Client {
	return &Client{t: t, session: session, nav: nav}
}

// Client issues authorized calls on behalf of one session.
type Client struct {
	t       *Transport
	session Session
	nav     ports.Navigator

	redirect sync.Once
	expired  bool
	mu       sync.Mutex
}

// Expired reports whether a 401 has been observed by this client.
func (c *Client) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

// Do sends req. On 2xx it returns the response; on 401 it ends the session,
// navigates to the login page and returns ErrAuthExpired; any other status
// yields *HTTPError and transport failures yield *NetworkError.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := c.do(ctx, req)

	call := metrics.GatewayCall{
		Method:   req.Method,
		Route:    req.route(),
		Outcome:  Classify(err).String(),
		Status:   StatusOf(err),
		Duration: time.Since(start),
		Err:      err,
	}
	if resp != nil {
		call.Status = resp.Status
	}
	c.t.metrics.ObserveGatewayCall(call)
	return resp, err
}

func (c *Client) do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.build(ctx, req)
	if err != nil {
		return nil, &NetworkError{Method: req.Method, Path: req.Path, Err: err}
	}

	httpResp, err := c.t.client.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Method: req.Method, Path: req.Path, Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, &NetworkError{Method: req.Method, Path: req.Path, Err: fmt.Errorf("read body: %w", err)}
	}

	switch {
	case httpResp.StatusCode == http.StatusUnauthorized:
		c.unauthorized(ctx, req)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, ErrAuthExpired)
	case httpResp.StatusCode < 200 || httpResp.StatusCode > 299:
		return nil, &HTTPError{Method: req.Method, Path: req.Path, Status: httpResp.StatusCode, Body: body}
	}

	return &Response{Status: httpResp.StatusCode, Header: httpResp.Header, Body: body}, nil
}

func (c *Client) build(ctx context.Context, req Request) (*http.Request, error) {
	if !strings.HasPrefix(req.Path, "/") {
		return nil, fmt.Errorf("path must be absolute: %q", req.Path)
	}
	u := c.t.base.JoinPath(req.Path)
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	body, contentType, err := req.body()
	if err != nil {
		return nil, err
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Read fresh on every call so a concurrent login/logout is picked up.
	token, err := c.session.Token(ctx)
	if err != nil {
		c.t.logger.WarnContext(ctx, "read token for backend call failed", "error", err, "path", req.Path)
	}
	if token != "" {
		(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(httpReq)
	}
	return httpReq, nil
}

func (c *Client) unauthorized(ctx context.Context, req Request) {
	c.mu.Lock()
	c.expired = true
	c.mu.Unlock()

	if _, anon := c.session.(anonymous); !anon {
		c.t.metrics.SessionEvent(metrics.SessionExpired)
	}
	if err := c.session.Logout(ctx); err != nil {
		c.t.logger.WarnContext(ctx, "clear session after 401 failed", "error", err)
	}
	c.redirect.Do(func() {
		c.t.logger.InfoContext(ctx, "backend rejected session token", "method", req.Method, "path", req.Path)
		if c.nav != nil {
			c.nav.Navigate(ctx, c.t.loginPath)
		}
	})
}

// Doer is satisfied by *Client; repositories depend on it.
type Doer interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

var _ Doer = (*Client)(nil)

type anonymous struct{}

func (anonymous) Token(context.Context) (string, error) { return "", nil }
func (anonymous) Logout(context.Context) error          { return nil }

// Anonymous returns a Client that sends no token and never navigates. It is
// used for the credential exchange, where a 401 means bad credentials.
func (t *Transport) Anonymous() *Client {
	return t.Bind(anonymous{}, nil)
}
