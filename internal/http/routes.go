package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/httprate"

	lockerpanel "github.com/bokuwaitgel/smart-locker-panel"
	"github.com/bokuwaitgel/smart-locker-panel/internal/service"
)

const defaultLoginRateLimit = 10

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Scope        ScopeConfig
	Auth         *service.AuthService
	LoginPath    string
	CookieDomain string
	// LoginRateLimit caps POST /login per client IP per minute; <0 disables.
	LoginRateLimit int
	// Metrics is served at /metrics when set, behind MetricsToken if non-empty.
	Metrics        http.Handler
	MetricsToken   string
	MaxUploadBytes int64
	// Compression enables gzip when non-nil.
	Compression *CompressionConfig
	// TemplateFS overrides the template source (tests).
	TemplateFS fs.FS
	IsDev      bool         // templates and static files from disk
	Logger     *slog.Logger // optional
}

func (s RouterServices) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// NewRouter creates the panel router with its middleware chain.
// It panics when templates cannot be parsed.
func NewRouter(services RouterServices) http.Handler {
	if services.Auth == nil {
		panic("RouterServices.Auth is required")
	}
	if services.LoginPath == "" {
		services.LoginPath = "/login"
	}
	if services.Scope.Logger == nil {
		services.Scope.Logger = services.Logger
	}

	mux := http.NewServeMux()
	ui := setupUIHandlers(services)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	if services.Metrics != nil {
		mux.Handle("GET /metrics", metricsGuard(services.MetricsToken, services.Metrics))
	}
	mux.Handle("GET /static/", staticWithFallback(services.IsDev, services.logger()))

	cfg := newRouteConfig(services)
	registerAuthRoutes(mux, ui, cfg)
	registerPanelRoutes(mux, ui, cfg)

	var handler http.Handler = &notFoundHandler{mux: mux, uiHandlers: ui}
	if services.Compression != nil {
		handler = Compression(*services.Compression)(handler)
	}
	handler = Logging(services.logger())(handler)
	return Recover(services.logger())(handler)
}

func setupUIHandlers(services RouterServices) *UIHandlers {
	templateFS := services.TemplateFS
	if templateFS == nil {
		templateFS = templateSource(services.IsDev, services.logger())
	}
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: templateFS, Logger: services.Logger})
	if err != nil {
		panic("parse templates: " + err.Error())
	}
	return &UIHandlers{
		T:         tr,
		Auth:      services.Auth,
		LoginPath: services.LoginPath,
		IsDev:     services.IsDev,
		Logger:    services.Logger,
	}
}

// templateSource picks the disk copy in dev mode and the embedded copy otherwise.
func templateSource(isDev bool, logger *slog.Logger) fs.FS {
	if isDev {
		if _, err := os.Stat(TemplatePathFromRoot); err == nil {
			return os.DirFS(TemplatePathFromRoot)
		}
		logger.Warn("template directory not found on disk, using embedded templates", "path", TemplatePathFromRoot)
	}
	sub, err := fs.Sub(lockerpanel.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		panic("embedded templates: " + err.Error())
	}
	return sub
}

// routeConfig holds the middleware shared by UI routes.
type routeConfig struct {
	scope     func(http.Handler) http.Handler
	csrf      func(http.Handler) http.Handler
	session   func(http.Handler) http.Handler
	admin     func(http.Handler) http.Handler
	loginRate func(http.Handler) http.Handler
	maxUpload func(http.Handler) http.Handler
}

func newRouteConfig(s RouterServices) routeConfig {
	limit := s.LoginRateLimit
	if limit == 0 {
		limit = defaultLoginRateLimit
	}
	loginRate := func(h http.Handler) http.Handler { return h }
	if limit > 0 {
		loginRate = httprate.Limit(limit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
				WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"error":   "rate_limited",
					"message": "Too many login attempts. Please wait a minute and try again.",
				})
			}),
		)
	}
	return routeConfig{
		scope:     Scope(s.Scope),
		csrf:      CSRFProtection(CSRFConfig{CookieDomain: s.CookieDomain, Logger: s.Logger}),
		session:   RequireSession(s.LoginPath),
		admin:     RequireAdmin(),
		loginRate: loginRate,
		maxUpload: MaxBody(s.MaxUploadBytes),
	}
}

// page wraps a signed-in route: CSRF outermost so its cookie survives a
// discarded response, then the request scope and the session check.
func (c routeConfig) page(h http.HandlerFunc) http.Handler {
	return c.csrf(c.scope(c.session(h)))
}

func (c routeConfig) adminPage(h http.HandlerFunc) http.Handler {
	return c.csrf(c.scope(c.session(c.admin(h))))
}

func registerAuthRoutes(mux *http.ServeMux, h *UIHandlers, cfg routeConfig) {
	mux.Handle("GET /login", cfg.csrf(cfg.scope(http.HandlerFunc(h.LoginPage))))
	mux.Handle("POST /login", cfg.loginRate(cfg.csrf(cfg.scope(http.HandlerFunc(h.LoginSubmit)))))
	mux.Handle("POST /logout", cfg.csrf(cfg.scope(http.HandlerFunc(h.Logout))))
	mux.Handle("GET /auth/status", cfg.scope(http.HandlerFunc(h.Status)))
}

func registerPanelRoutes(mux *http.ServeMux, h *UIHandlers, cfg routeConfig) {
	mux.Handle("GET /{$}", http.HandlerFunc(h.Index))
	mux.Handle("GET /dashboard", cfg.page(h.Dashboard))

	mux.Handle("GET /dashboard/containers", cfg.page(h.Containers))
	mux.Handle("POST /dashboard/containers", cfg.adminPage(h.ContainerCreate))
	mux.Handle("POST /dashboard/containers/{id}/status", cfg.page(h.ContainerSetStatus))

	mux.Handle("GET /dashboard/lockers", cfg.page(h.Lockers))
	mux.Handle("POST /dashboard/lockers/{id}/status", cfg.page(h.LockerSetStatus))
	mux.Handle("POST /dashboard/lockers/{id}/open", cfg.page(h.LockerOpen))

	mux.Handle("GET /dashboard/orders", cfg.page(h.Orders))
	mux.Handle("POST /dashboard/orders/{id}/status", cfg.page(h.OrderSetStatus))

	mux.Handle("GET /dashboard/banner", cfg.page(h.Banners))
	mux.Handle("POST /dashboard/banner", cfg.maxUpload(cfg.adminPage(h.BannerUpload)))
	mux.Handle("POST /dashboard/banner/{id}/toggle", cfg.adminPage(h.BannerToggle))
	mux.Handle("POST /dashboard/banner/{id}/delete", cfg.adminPage(h.BannerDelete))
}

// staticWithFallback serves /static/* from disk in dev mode and from the
// embedded FS otherwise.
func staticWithFallback(isDev bool, logger *slog.Logger) http.Handler {
	const diskDir = "frontend/static"
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir(diskDir))))
	}
	sub, err := fs.Sub(lockerpanel.StaticFS, diskDir)
	if err != nil {
		logger.Error("embedded static assets unavailable, serving from disk", "error", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir(diskDir))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(sub))))
}

// hashedAsset matches content-hashed file names such as app.1a2b3c4d.js.
var hashedAsset = regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hashedAsset.MatchString(r.URL.Path) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and renders the panel's 404 page.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Only unmatched routes are replaced; handlers may still answer 404 themselves.
	if _, pattern := h.mux.Handler(r); pattern == "" && !strings.HasPrefix(r.URL.Path, "/static/") {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			h.uiHandlers.NotFound(w, r)
			return
		}
	}
	h.mux.ServeHTTP(w, r)
}
