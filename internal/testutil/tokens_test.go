package testutil

import (
	"strings"
	"testing"
	"time"
)

func TestMintToken_HasThreeSegments(t *testing.T) {
	tok := MintToken(t, TokenClaims{ID: 7, Email: "x@example.com", Role: "USER", Exp: TestTime().Add(time.Minute)})
	if got := strings.Count(tok, "."); got != 2 {
		t.Fatalf("expected 3 segments, got %d dots in %q", got, tok)
	}
}

func TestFixedTimeFunc(t *testing.T) {
	now := FixedTimeFunc(TestTime())
	if !now().Equal(TestTime()) {
		t.Fatalf("unexpected time %v", now())
	}
}
