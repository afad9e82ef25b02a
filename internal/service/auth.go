package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/bokuwaitgel/smart-locker-panel/internal/errors"
	"github.com/bokuwaitgel/smart-locker-panel/internal/observability/metrics"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.LoginProvider
	Metrics  metrics.Recorder // optional
	Logger   *slog.Logger
}

// AuthService orchestrates the login flow: the backend issues the token and
// the caller's SessionService stores it.
type AuthService struct {
	provider ports.LoginProvider
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Provider == nil {
		panic("LoginProvider is required")
	}
	return &AuthService{provider: opts.Provider, metrics: metrics.OrNoop(opts.Metrics), logger: opts.Logger}
}

func (s *AuthService) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// Login exchanges creds for a token and commits it to session. Rejected
// credentials and unusable tokens come back as unauthorized AppErrors.
func (s *AuthService) Login(ctx context.Context, session *SessionService, creds ports.Credentials) error {
	if session == nil {
		return errors.New("session is required")
	}
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return apperrors.ValidationField("email", "Email and password are required")
	}

	token, err := s.provider.Authenticate(ctx, creds)
	if err != nil {
		if errors.Is(err, ports.ErrInvalidCredentials) {
			return apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "Invalid email or password")
		}
		s.log().WarnContext(ctx, "login request failed", "error", err)
		return apperrors.MapGatewayError(fmt.Errorf("authenticate: %w", err))
	}

	if err := session.Login(ctx, token); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			s.log().WarnContext(ctx, "backend issued an unusable token", "error", err)
			return apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "The server returned an invalid session")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "Could not store the session")
	}
	s.metrics.SessionEvent(metrics.SessionLogin)
	s.log().InfoContext(ctx, "user logged in", "user_id", session.Identity().ID)
	return nil
}

// Logout clears session. A nil session is a no-op.
func (s *AuthService) Logout(ctx context.Context, session *SessionService) error {
	if session == nil {
		return nil
	}
	if err := session.Logout(ctx); err != nil {
		return err
	}
	s.metrics.SessionEvent(metrics.SessionLogout)
	return nil
}
