package config

import (
	"strings"
	"time"
)

const (
	defaultAPIURL            = "http://localhost:3001"
	defaultErrorMessageExpr  = "message || error.message || error"
	defaultMaxUploadBytes    = 50 << 20
	defaultBackendTimeout    = 15 * time.Second
	defaultBackendLoginPath  = "/auth/login"
	minBackendRequestTimeout = time.Second
	maxBackendRequestTimeout = 5 * time.Minute
)

// BackendConfig describes the external locker REST backend reached through the API gateway.
type BackendConfig struct {
	// BaseURL is the origin every gateway call is resolved against.
	BaseURL string `env:"API_URL" envDefault:"http://localhost:3001"`

	// Timeout bounds a single backend call.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`

	// LoginPath is the backend endpoint exchanging credentials for a token.
	LoginPath string `env:"API_LOGIN_PATH" envDefault:"/auth/login"`

	// ErrorMessageExpr is a JMESPath expression that pulls a human readable
	// message out of a failed response body.
	ErrorMessageExpr string `env:"API_ERROR_MESSAGE_EXPR" envDefault:"message || error.message || error"`

	// MaxUploadBytes caps banner uploads accepted from the browser.
	MaxUploadBytes int64 `env:"API_MAX_UPLOAD_BYTES" envDefault:"52428800"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	if b.BaseURL == "" {
		b.BaseURL = defaultAPIURL
	}
	if b.Timeout < minBackendRequestTimeout || b.Timeout > maxBackendRequestTimeout {
		b.Timeout = defaultBackendTimeout
	}
	b.LoginPath = strings.TrimSpace(b.LoginPath)
	if b.LoginPath == "" {
		b.LoginPath = defaultBackendLoginPath
	}
	if !strings.HasPrefix(b.LoginPath, "/") {
		b.LoginPath = "/" + b.LoginPath
	}
	if strings.TrimSpace(b.ErrorMessageExpr) == "" {
		b.ErrorMessageExpr = defaultErrorMessageExpr
	}
	if b.MaxUploadBytes <= 0 {
		b.MaxUploadBytes = defaultMaxUploadBytes
	}
}
