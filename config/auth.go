package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionBackend selects where the bearer token lives between requests.
type SessionBackend string

const (
	// SessionBackendCookie keeps the token itself in the browser cookie.
	SessionBackendCookie SessionBackend = "cookie"
	// SessionBackendRedis keeps an opaque id in the cookie and the token in Redis.
	SessionBackendRedis SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "cookie", "redis":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: cookie, redis)", v)
	}
}

const (
	defaultTokenCookieName = "token"
	defaultTokenTTL        = 7 * 24 * time.Hour
	defaultLoginPath       = "/login"
)

// AuthConfig groups session and token-storage configuration.
type AuthConfig struct {
	// Backend determines where the token is stored.
	Backend SessionBackend `env:"SESSION_BACKEND" envDefault:"cookie"`

	// CookieName is the name of the cookie carrying the token (or the Redis session id).
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"token"`

	// TokenTTL is the retention window applied on login.
	TokenTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// LoginPath is the login entry point that unauthenticated visitors are sent to.
	LoginPath string `env:"SESSION_LOGIN_PATH" envDefault:"/login"`
}

// Sanitize applies guardrails to session configuration values.
func (a *AuthConfig) Sanitize() {
	if a.Backend == "" {
		a.Backend = SessionBackendCookie
	}
	a.CookieName = strings.TrimSpace(a.CookieName)
	if a.CookieName == "" {
		a.CookieName = defaultTokenCookieName
	}
	if a.TokenTTL <= 0 {
		a.TokenTTL = defaultTokenTTL
	}
	a.LoginPath = strings.TrimSpace(a.LoginPath)
	if !strings.HasPrefix(a.LoginPath, "/") {
		a.LoginPath = defaultLoginPath
	}
}
