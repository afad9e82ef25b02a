package ports

// Package ports defines interfaces (hexagonal ports) for session-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/bokuwaitgel/smart-locker-panel/internal/domain/auth"
)

// TokenStore holds the bearer token between calls (browser cookie, Redis, memory).
// Token returns "" with a nil error when no token is present.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string, ttl time.Duration) error
	RemoveToken(ctx context.Context) error
}

// TokenDecoder reads claims out of a token without verifying its signature.
type TokenDecoder interface {
	Decode(token string) (domainauth.Identity, error)
}

// Credentials are submitted on the login form.
type Credentials struct {
	Email    string
	Password string
}

// ErrInvalidCredentials is returned by a LoginProvider when the backend rejects the credentials.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginProvider exchanges credentials for a backend-issued token.
type LoginProvider interface {
	Authenticate(ctx context.Context, creds Credentials) (string, error)
}

// Navigator performs a client navigation to target (a redirect in the browser
// flow, a no-op or message in the CLI).
type Navigator interface {
	Navigate(ctx context.Context, target string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, target string)

// Navigate calls f(ctx, target).
func (f NavigatorFunc) Navigate(ctx context.Context, target string) { f(ctx, target) }
