// Package memstore holds the bearer token in process memory (operator CLI).
package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

var _ ports.TokenStore = (*Store)(nil)

// Store is a goroutine-safe in-memory token holder. Retention is enforced
// lazily on read using the injected clock.
type Store struct {
	mu      sync.Mutex
	token   string
	expires time.Time
	now     func() time.Time
}

// New returns a Store seeded with token; a zero ttl keeps it indefinitely.
func New(token string, ttl time.Duration) *Store {
	s := &Store{token: token, now: time.Now}
	if token != "" && ttl > 0 {
		s.expires = s.now().Add(ttl)
	}
	return s
}

func (s *Store) Token(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.expires.IsZero() && !s.now().Before(s.expires) {
		s.token, s.expires = "", time.Time{}
	}
	return s.token, nil
}

func (s *Store) SetToken(_ context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expires = time.Time{}
	if ttl > 0 {
		s.expires = s.now().Add(ttl)
	}
	return nil
}

func (s *Store) RemoveToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.expires = "", time.Time{}
	return nil
}
