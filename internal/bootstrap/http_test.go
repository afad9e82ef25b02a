package bootstrap

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokuwaitgel/smart-locker-panel/config"
)

func TestNewHTTPServer_DefaultAddr(t *testing.T) {
	srv := NewHTTPServer(HTTPServerConfig{Handler: http.NotFoundHandler()})
	assert.Equal(t, ":8080", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.Positive(t, srv.ReadHeaderTimeout)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	srv := NewHTTPServer(HTTPServerConfig{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()})
	ctx, cancel := context.WithCancel(context.Background())

	hookRan := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ServeConfig{
			Server: srv,
			OnShutdown: []func(context.Context) error{
				nil,
				func(context.Context) error { close(hookRan); return nil },
			},
			Logger: quietLogger(),
		})
	}()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	select {
	case <-hookRan:
	default:
		t.Fatal("shutdown hook did not run")
	}
}

func TestServe_ListenFailure(t *testing.T) {
	srv := NewHTTPServer(HTTPServerConfig{Addr: "256.0.0.1:bad", Handler: http.NotFoundHandler()})
	err := Serve(context.Background(), ServeConfig{Server: srv, Logger: quietLogger()})
	require.Error(t, err)
}

func TestServe_RequiresServer(t *testing.T) {
	require.Error(t, Serve(context.Background(), ServeConfig{}))
}

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions(config.RedisConfig{Addr: "cache:6379", Password: "pw", DB: 2})
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)

	opts, err = redisOptions(config.RedisConfig{Addr: "redis://:secret@cache:6380/4", Password: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 4, opts.DB)

	_, err = redisOptions(config.RedisConfig{Addr: " "})
	require.Error(t, err)

	_, err = redisOptions(config.RedisConfig{Addr: "redis://cache:6379/notanumber"})
	require.Error(t, err)
}

func TestStartupAttrs(t *testing.T) {
	assert.Nil(t, StartupAttrs(nil))

	cfg := testConfig("http://localhost:3001")
	attrs := StartupAttrs(cfg)
	require.Len(t, attrs, 12)
	assert.Equal(t, "addr", attrs[0])
	assert.Equal(t, cfg.HTTP.Addr, attrs[1])
	assert.Equal(t, "cookie", attrs[5])
}
