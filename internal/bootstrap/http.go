package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 10 * time.Second

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Addr    string
	Handler http.Handler
	Logger  *slog.Logger
}

// NewHTTPServer wraps the handler with request tracing and returns an
// unstarted server.
func NewHTTPServer(cfg HTTPServerConfig) *http.Server {
	addr := cfg.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}
	return &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(cfg.Handler, "locker-panel"),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// ServeConfig contains what Serve needs to run and stop the server.
type ServeConfig struct {
	Server *http.Server
	// OnShutdown runs after the server stopped (tracer flush, client close).
	OnShutdown []func(context.Context) error
	Logger     *slog.Logger
}

// Serve runs the server until ctx is cancelled, SIGINT/SIGTERM arrives or
// the listener fails, then shuts everything down gracefully.
func Serve(ctx context.Context, cfg ServeConfig) error {
	if cfg.Server == nil {
		return errors.New("server is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", cfg.Server.Addr)
		if err := cfg.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
	case err, ok := <-errCh:
		if ok {
			logger.Error("HTTP server failed", "error", err)
			serveErr = err
		}
	}

	// Shutdown with timeout; the parent ctx is already done here.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	errs := []error{serveErr}
	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	} else {
		logger.Info("HTTP server stopped")
	}
	for _, fn := range cfg.OnShutdown {
		if fn == nil {
			continue
		}
		if err := fn(shutdownCtx); err != nil {
			logger.Warn("shutdown hook failed", "error", err)
		}
	}
	return errors.Join(errs...)
}
