// Package jwtclaims decodes backend-issued bearer tokens into a session identity.
// Signatures are never verified; the decoded claims are a UI hint only.
package jwtclaims

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/bokuwaitgel/smart-locker-panel/internal/domain/auth"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

var _ ports.TokenDecoder = Decoder{}

// ErrMalformed is returned for tokens whose payload cannot be read.
var ErrMalformed = errors.New("malformed token")

// Claims is the payload shape issued by the locker backend.
type Claims struct {
	jwt.RegisteredClaims

	UserID userID `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role"`
}

// userID accepts both numeric and quoted-numeric id claims.
type userID int64

func (u *userID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*u = 0
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("id claim: %w", err)
	}
	*u = userID(n)
	return nil
}

// Decoder reads claims without verifying the signature.
type Decoder struct{}

var parser = jwt.NewParser(jwt.WithJSONNumber())

// Decode parses token into an Identity. Expiry is reported, not enforced.
func (Decoder) Decode(token string) (domainauth.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainauth.Identity{}, ErrMalformed
	}

	var c Claims
	if _, _, err := parser.ParseUnverified(token, &c); err != nil {
		return domainauth.Identity{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	id := domainauth.Identity{
		ID:    int64(c.UserID),
		Email: c.Email,
		Name:  c.Name,
		Role:  domainauth.ParseRole(c.Role),
	}
	if c.ExpiresAt != nil {
		id.ExpiresAt = c.ExpiresAt.Unix()
	}
	return id, nil
}
