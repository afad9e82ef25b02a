package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/bokuwaitgel/smart-locker-panel/config"
	"github.com/bokuwaitgel/smart-locker-panel/internal/adapters/cookiestore"
	"github.com/bokuwaitgel/smart-locker-panel/internal/adapters/jwtclaims"
	redisadapter "github.com/bokuwaitgel/smart-locker-panel/internal/adapters/redis"
	"github.com/bokuwaitgel/smart-locker-panel/internal/data"
	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
	httpx "github.com/bokuwaitgel/smart-locker-panel/internal/http"
	"github.com/bokuwaitgel/smart-locker-panel/internal/observability/metrics"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
	"github.com/bokuwaitgel/smart-locker-panel/internal/service"
)

// PanelDeps holds the process-wide dependencies the panel is built from.
type PanelDeps struct {
	Config *config.AppConfig
	// Redis is required when the session backend is redis.
	Redis redis.UniversalClient
	// Metrics is optional; when it is a *metrics.Prometheus and metrics are
	// enabled its registry is served at /metrics.
	Metrics metrics.Recorder
	// HTTPClient overrides the gateway's HTTP client (tests).
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// BuildPanel wires the gateway, session stores and services into the panel router.
func BuildPanel(deps PanelDeps) (http.Handler, error) {
	if deps.Config == nil {
		return nil, errors.New("panel config is required")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	transport, err := gateway.NewTransport(gateway.TransportOptions{
		BaseURL:    cfg.Backend.BaseURL,
		Timeout:    cfg.Backend.Timeout,
		LoginPath:  cfg.Auth.LoginPath,
		HTTPClient: deps.HTTPClient,
		Metrics:    deps.Metrics,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build gateway: %w", err)
	}

	messages, err := service.NewMessageExtractor(cfg.Backend.ErrorMessageExpr)
	if err != nil {
		return nil, err
	}

	logins, err := data.NewLoginRepo(transport.Anonymous(), cfg.Backend.LoginPath)
	if err != nil {
		return nil, fmt.Errorf("build login repo: %w", err)
	}

	tokens, err := tokenStores(cfg, deps.Redis)
	if err != nil {
		return nil, err
	}

	services := httpx.RouterServices{
		Scope: httpx.ScopeConfig{
			Transport:  transport,
			Tokens:     tokens,
			Decoder:    jwtclaims.Decoder{},
			NewBackend: data.NewBackend,
			Messages:   messages,
			TTL:        cfg.Auth.TokenTTL,
			Logger:     logger,
		},
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Provider: logins,
			Metrics:  deps.Metrics,
			Logger:   logger,
		}),
		LoginPath:      cfg.Auth.LoginPath,
		CookieDomain:   cfg.HTTP.CookieDomain,
		LoginRateLimit: cfg.HTTP.LoginRateLimit,
		MaxUploadBytes: cfg.Backend.MaxUploadBytes,
		IsDev:          cfg.IsDev,
		Logger:         logger,
	}

	if cfg.HTTP.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", cfg.HTTP.CompressionLevel)
		services.Compression = &httpx.CompressionConfig{Level: cfg.HTTP.CompressionLevel, Logger: logger}
	}

	if prom, ok := deps.Metrics.(*metrics.Prometheus); ok && cfg.Observability.Metrics.Enabled {
		services.Metrics = prom.Handler()
		services.MetricsToken = cfg.Observability.Metrics.Token
		if services.MetricsToken == "" {
			logger.Warn("metrics endpoint is not protected; set METRICS_TOKEN")
		}
	}

	return httpx.NewRouter(services), nil
}

// tokenStores picks where the bearer token lives between requests: in the
// cookie itself, or in Redis behind an opaque cookie id.
func tokenStores(cfg *config.AppConfig, client redis.UniversalClient) (httpx.TokenStoreFunc, error) {
	cookies := func(w http.ResponseWriter, r *http.Request) *cookiestore.Store {
		return cookiestore.New(w, r, cookiestore.Options{
			Name:   cfg.Auth.CookieName,
			Domain: cfg.HTTP.CookieDomain,
			Secure: httpx.IsSecureRequest(r),
		})
	}

	if !cfg.UsesRedisSessions() {
		return func(w http.ResponseWriter, r *http.Request) ports.TokenStore {
			return cookies(w, r)
		}, nil
	}
	if client == nil {
		return nil, errors.New("SESSION_BACKEND=redis requires a redis client")
	}
	store := redisadapter.NewTokenStoreWithPrefix(client, cfg.Redis.KeyPrefix)
	return func(w http.ResponseWriter, r *http.Request) ports.TokenStore {
		return store.Bind(cookies(w, r))
	}, nil
}
