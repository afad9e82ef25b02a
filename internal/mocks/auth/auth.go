package auth

// Package auth contains simple hand-written test doubles for session ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenStore    = (*MemoryTokenStore)(nil)
	_ ports.LoginProvider = (*StaticLoginProvider)(nil)
	_ ports.Navigator     = (*RecordingNavigator)(nil)
)

// MemoryTokenStore is an in-memory token store that records how it was used.
type MemoryTokenStore struct {
	mu      sync.Mutex
	token   string
	ttl     time.Duration
	removed int

	// Err, when set, is returned by every operation.
	Err error
}

// NewMemoryTokenStore creates a store pre-populated with token ("" for none).
func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (m *MemoryTokenStore) Token(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.token, nil
}

func (m *MemoryTokenStore) SetToken(_ context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if token == "" {
		return errors.New("token cannot be empty")
	}
	m.token = token
	m.ttl = ttl
	return nil
}

func (m *MemoryTokenStore) RemoveToken(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.token = ""
	m.ttl = 0
	m.removed++
	return nil
}

// Present reports whether a token is currently held.
func (m *MemoryTokenStore) Present() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != ""
}

// Current returns the held token without error handling.
func (m *MemoryTokenStore) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// TTL returns the retention window passed to the last SetToken.
func (m *MemoryTokenStore) TTL() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ttl
}

// Removals returns how many times RemoveToken ran.
func (m *MemoryTokenStore) Removals() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removed
}

// StaticLoginProvider returns a fixed token for matching credentials.
type StaticLoginProvider struct {
	AuthenticateFunc func(ctx context.Context, creds ports.Credentials) (string, error)

	Email    string
	Password string
	Token    string
}

func (p *StaticLoginProvider) Authenticate(ctx context.Context, creds ports.Credentials) (string, error) {
	if p.AuthenticateFunc != nil {
		return p.AuthenticateFunc(ctx, creds)
	}
	if creds.Email != p.Email || creds.Password != p.Password {
		return "", ErrInvalidCredentials
	}
	return p.Token, nil
}

// ErrInvalidCredentials is returned by StaticLoginProvider on mismatch.
var ErrInvalidCredentials = ports.ErrInvalidCredentials

// RecordingNavigator records every navigation target.
type RecordingNavigator struct {
	mu      sync.Mutex
	targets []string
}

func (n *RecordingNavigator) Navigate(_ context.Context, target string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
}

// Targets returns a copy of the recorded navigation targets.
func (n *RecordingNavigator) Targets() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.targets...)
}
