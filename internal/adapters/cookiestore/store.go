// Package cookiestore keeps the bearer token in a browser cookie for the
// duration of one HTTP request.
package cookiestore

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

var _ ports.TokenStore = (*Store)(nil)

// Options configures the cookie attributes.
type Options struct {
	Name   string
	Domain string
	Secure bool
}

// Store reads the token from the request cookie and writes changes to the response.
// Writes made during the request are visible to later reads in the same request.
type Store struct {
	w    http.ResponseWriter
	r    *http.Request
	opts Options

	mu       sync.Mutex
	override *string
}

// New binds a Store to a single request/response pair.
func New(w http.ResponseWriter, r *http.Request, opts Options) *Store {
	if opts.Name == "" {
		opts.Name = "token"
	}
	return &Store{w: w, r: r, opts: opts}
}

func (s *Store) Token(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.override != nil {
		return *s.override, nil
	}
	c, err := s.r.Cookie(s.opts.Name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", nil
		}
		return "", err
	}
	return c.Value, nil
}

func (s *Store) SetToken(_ context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	http.SetCookie(s.w, s.cookie(token, int(ttl/time.Second), time.Now().Add(ttl)))
	s.override = &token
	return nil
}

func (s *Store) RemoveToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	empty := ""
	if s.override != nil && *s.override == "" {
		return nil
	}
	http.SetCookie(s.w, s.cookie("", -1, time.Unix(0, 0)))
	s.override = &empty
	return nil
}

func (s *Store) cookie(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     s.opts.Name,
		Value:    value,
		Path:     "/",
		Domain:   s.opts.Domain,
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.opts.Secure || s.r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}
