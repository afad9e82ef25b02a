package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Session and token storage configuration
//   - backend.go: Locker REST backend (API gateway) configuration
//   - database.go: Redis configuration for server-side token storage
//   - http.go: HTTP server configuration
//   - observability.go: Metrics and tracing configuration
type AppConfig struct {
	// IsDev controls development mode behavior (detailed template errors).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Session and token storage configuration
	Auth AuthConfig

	// Locker backend configuration
	Backend BackendConfig

	// Redis configuration (used when SESSION_BACKEND=redis)
	Redis RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Backend.Sanitize()
	c.Auth.Sanitize()
	c.Redis.Sanitize()
	c.Observability.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// UsesRedisSessions reports whether tokens are kept server-side in Redis.
func (c *AppConfig) UsesRedisSessions() bool {
	return c.Auth.Backend == SessionBackendRedis
}
