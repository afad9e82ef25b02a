package auth

// Package auth contains domain-level types for the panel session.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents the role claim carried by a backend-issued token.
// It is a UI hint only; the backend enforces every privileged call.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole maps a claim value to a Role. Only the exact "ADMIN" claim is
// an administrator; anything else is RoleUser.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// Identity is the decoded, unverified payload of a session token.
type Identity struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      Role   `json:"role"`
	ExpiresAt int64  `json:"exp,omitempty"` // seconds since epoch, 0 when absent
}

// DisplayName returns Name when set, otherwise Email.
func (i Identity) DisplayName() string {
	if n := strings.TrimSpace(i.Name); n != "" {
		return n
	}
	return i.Email
}

// Expired reports whether the expiry claim is strictly before now.
// Tokens without an expiry claim never expire locally.
func (i Identity) Expired(now time.Time) bool {
	return i.ExpiresAt != 0 && time.Unix(i.ExpiresAt, 0).Before(now)
}

// State is the session lifecycle position.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)
