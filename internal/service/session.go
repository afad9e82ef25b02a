package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/bokuwaitgel/smart-locker-panel/internal/domain/auth"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

// DefaultTokenTTL is the retention window applied to a token on login.
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned by Login when the token cannot be decoded or is already expired.
var ErrInvalidToken = errors.New("invalid session token")

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Tokens  ports.TokenStore
	Decoder ports.TokenDecoder
	TTL     time.Duration    // optional; defaults to DefaultTokenTTL
	Now     func() time.Time // optional; defaults to time.Now
	Logger  *slog.Logger
}

// SessionService tracks who is logged in for one consumer (a browser request or a CLI process).
// It is the only writer of the token store and of the in-memory identity.
type SessionService struct {
	tokens  ports.TokenStore
	decoder ports.TokenDecoder
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger

	hydrate sync.Once

	mu       sync.RWMutex
	state    domainauth.State
	identity *domainauth.Identity
}

// NewSessionService constructs a SessionService in the uninitialized state.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		tokens:  opts.Tokens,
		decoder: opts.Decoder,
		ttl:     ttl,
		now:     now,
		logger:  logger.With("component", "session"),
		state:   domainauth.StateUninitialized,
	}
}

// Hydrate restores the session from the token store. Only the first call has
// any effect. Missing, malformed or expired tokens leave the session anonymous
// and the latter two are removed from the store.
func (s *SessionService) Hydrate(ctx context.Context) {
	s.hydrate.Do(func() {
		s.setState(domainauth.StateLoading, nil)
		id := s.restore(ctx)
		if id == nil {
			s.setState(domainauth.StateAnonymous, nil)
			return
		}
		s.setState(domainauth.StateAuthenticated, id)
	})
}

func (s *SessionService) restore(ctx context.Context) *domainauth.Identity {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "read session token failed", "error", err)
		return nil
	}
	if token == "" {
		return nil
	}

	id, err := s.decoder.Decode(token)
	switch {
	case err != nil:
		s.logger.DebugContext(ctx, "discarding undecodable session token", "error", err)
	case id.Expired(s.now()):
		s.logger.DebugContext(ctx, "discarding expired session token", "user_id", id.ID, "exp", id.ExpiresAt)
	default:
		return &id
	}

	if rmErr := s.tokens.RemoveToken(ctx); rmErr != nil {
		s.logger.WarnContext(ctx, "remove session token failed", "error", rmErr)
	}
	return nil
}

// Login validates token, stores it for the configured retention window and
// marks the session authenticated. Nothing is committed when validation fails.
func (s *SessionService) Login(ctx context.Context, token string) error {
	id, err := s.decoder.Decode(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if id.Expired(s.now()) {
		return fmt.Errorf("%w: token expired", ErrInvalidToken)
	}

	if err := s.tokens.SetToken(ctx, token, s.ttl); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	// A login supersedes any pending hydration.
	s.hydrate.Do(func() {})
	s.setState(domainauth.StateAuthenticated, &id)
	s.logger.InfoContext(ctx, "session started", "user_id", id.ID, "role", id.Role)
	return nil
}

// Logout removes the token and marks the session anonymous. It is idempotent;
// the session is anonymous afterwards even when the store reports an error.
func (s *SessionService) Logout(ctx context.Context) error {
	s.hydrate.Do(func() {})
	s.setState(domainauth.StateAnonymous, nil)
	if err := s.tokens.RemoveToken(ctx); err != nil {
		return fmt.Errorf("remove session token: %w", err)
	}
	return nil
}

// Token reads the current token fresh from the store.
func (s *SessionService) Token(ctx context.Context) (string, error) {
	return s.tokens.Token(ctx)
}

func (s *SessionService) setState(state domainauth.State, id *domainauth.Identity) {
	s.mu.Lock()
	s.state = state
	s.identity = id
	s.mu.Unlock()
}

// State returns the lifecycle position.
func (s *SessionService) State() domainauth.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsLoading reports whether hydration is in progress.
func (s *SessionService) IsLoading() bool { return s.State() == domainauth.StateLoading }

// IsAuthenticated reports whether a decoded, unexpired identity is held.
func (s *SessionService) IsAuthenticated() bool { return s.State() == domainauth.StateAuthenticated }

// IsAdmin reports whether the session is authenticated with the ADMIN role.
// This is a display hint; the backend authorizes every privileged call.
func (s *SessionService) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == domainauth.StateAuthenticated && s.identity != nil && s.identity.Role == domainauth.RoleAdmin
}

// Identity returns a copy of the current identity, or nil when anonymous.
func (s *SessionService) Identity() *domainauth.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// SessionSnapshot is a point-in-time view of a session suitable for templates and JSON.
type SessionSnapshot struct {
	State         domainauth.State     `json:"state"`
	Authenticated bool                 `json:"authenticated"`
	IsAdmin       bool                 `json:"isAdmin"`
	User          *domainauth.Identity `json:"user"`
}

// Snapshot returns the current session view.
func (s *SessionService) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := SessionSnapshot{State: s.state, Authenticated: s.state == domainauth.StateAuthenticated}
	if snap.Authenticated && s.identity != nil {
		id := *s.identity
		snap.User = &id
		snap.IsAdmin = id.Role == domainauth.RoleAdmin
	}
	return snap
}
