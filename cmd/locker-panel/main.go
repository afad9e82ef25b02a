package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/bokuwaitgel/smart-locker-panel/internal/bootstrap"
	"github.com/bokuwaitgel/smart-locker-panel/internal/observability/metrics"
	"github.com/bokuwaitgel/smart-locker-panel/internal/observability/telemetry"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "starting locker panel", bootstrap.StartupAttrs(&cfg)...)

	shutdownTracing := telemetry.Setup(ctx, cfg.Observability.Tracing, logger)
	hooks := []func(context.Context) error{shutdownTracing}

	var redisClient *redis.Client
	if cfg.UsesRedisSessions() {
		redisClient, err = bootstrap.ConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		hooks = append(hooks, func(context.Context) error { return redisClient.Close() })
	}

	deps := bootstrap.PanelDeps{
		Config:  &cfg,
		Metrics: metrics.NewPrometheus(),
		Logger:  logger,
	}
	if redisClient != nil {
		deps.Redis = redisClient
	}
	handler, err := bootstrap.BuildPanel(deps)
	if err != nil {
		return err
	}

	return bootstrap.Serve(ctx, bootstrap.ServeConfig{
		Server:     bootstrap.NewHTTPServer(bootstrap.HTTPServerConfig{Addr: cfg.HTTP.Addr, Handler: handler, Logger: logger}),
		OnShutdown: hooks,
		Logger:     logger,
	})
}
