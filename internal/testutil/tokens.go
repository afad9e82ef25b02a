package testutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims describes the payload of a test token.
type TokenClaims struct {
	ID    int64
	Email string
	Name  string
	Role  string
	// Exp is the absolute expiry; zero omits the claim.
	Exp time.Time
}

// MintToken signs claims with a throwaway HMAC key. The panel never verifies
// signatures, so any key works.
func MintToken(t TestingTB, c TokenClaims) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":    c.ID,
		"email": c.Email,
		"role":  c.Role,
	}
	if c.Name != "" {
		claims["name"] = c.Name
	}
	if !c.Exp.IsZero() {
		claims["exp"] = c.Exp.Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return signed
}

// AdminToken returns a token for an administrator expiring an hour after now.
func AdminToken(t TestingTB, now time.Time) string {
	t.Helper()
	return MintToken(t, TokenClaims{ID: 1, Email: "admin@example.com", Name: "Admin", Role: "ADMIN", Exp: now.Add(time.Hour)})
}

// UserToken returns a token for a regular user expiring an hour after now.
func UserToken(t TestingTB, now time.Time) string {
	t.Helper()
	return MintToken(t, TokenClaims{ID: 2, Email: "user@example.com", Role: "USER", Exp: now.Add(time.Hour)})
}
