package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokuwaitgel/smart-locker-panel/internal/adapters/jwtclaims"
	domainauth "github.com/bokuwaitgel/smart-locker-panel/internal/domain/auth"
	mocks "github.com/bokuwaitgel/smart-locker-panel/internal/mocks/auth"
	"github.com/bokuwaitgel/smart-locker-panel/internal/testutil"
)

func newTestSession(store *mocks.MemoryTokenStore, now time.Time) *SessionService {
	return NewSessionService(SessionServiceOptions{
		Tokens:  store,
		Decoder: jwtclaims.Decoder{},
		Now:     testutil.FixedTimeFunc(now),
	})
}

func TestNewSessionService_Defaults(t *testing.T) {
	s := NewSessionService(SessionServiceOptions{Tokens: mocks.NewMemoryTokenStore(""), Decoder: jwtclaims.Decoder{}})

	assert.Equal(t, DefaultTokenTTL, s.ttl)
	assert.NotNil(t, s.now)
	assert.Equal(t, domainauth.StateUninitialized, s.State())
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
}

func TestSessionService_Hydrate_AdminToken(t *testing.T) {
	now := testutil.TestTime()
	tok := testutil.MintToken(t, testutil.TokenClaims{ID: 1, Email: "a@example.com", Role: "ADMIN", Exp: now.Add(time.Hour)})
	store := mocks.NewMemoryTokenStore(tok)
	s := newTestSession(store, now)

	s.Hydrate(context.Background())

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	assert.False(t, s.IsLoading())
	assert.Equal(t, tok, store.Current())
	require.NotNil(t, s.Identity())
	assert.Equal(t, "a@example.com", s.Identity().Email)
}

func TestSessionService_Hydrate_ExpiredUserToken(t *testing.T) {
	now := testutil.TestTime()
	tok := testutil.MintToken(t, testutil.TokenClaims{ID: 2, Role: "USER", Exp: now.Add(-10 * time.Second)})
	store := mocks.NewMemoryTokenStore(tok)
	s := newTestSession(store, now)

	s.Hydrate(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, domainauth.StateAnonymous, s.State())
	assert.False(t, store.Present())
	assert.Nil(t, s.Identity())
}

func TestSessionService_Hydrate_ExpiryTable(t *testing.T) {
	now := testutil.TestTime()
	tests := []struct {
		name     string
		offset   time.Duration
		wantAuth bool
	}{
		{"one second in the past", -time.Second, false},
		{"a day in the past", -24 * time.Hour, false},
		{"exactly now", 0, true},
		{"one minute ahead", time.Minute, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := testutil.MintToken(t, testutil.TokenClaims{ID: 9, Role: "USER", Exp: now.Add(tt.offset)})
			store := mocks.NewMemoryTokenStore(tok)
			s := newTestSession(store, now)

			s.Hydrate(context.Background())

			assert.Equal(t, tt.wantAuth, s.IsAuthenticated())
			assert.Equal(t, tt.wantAuth, store.Present())
		})
	}
}

func TestSessionService_Hydrate_NoExpiryClaim(t *testing.T) {
	tok := testutil.MintToken(t, testutil.TokenClaims{ID: 5, Role: "USER"})
	s := newTestSession(mocks.NewMemoryTokenStore(tok), testutil.TestTime())

	s.Hydrate(context.Background())

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
}

func TestSessionService_Hydrate_MalformedTokens(t *testing.T) {
	for _, tok := range []string{"garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.bm90LWpzb24.sig", "...."} {
		t.Run(tok, func(t *testing.T) {
			store := mocks.NewMemoryTokenStore(tok)
			s := newTestSession(store, testutil.TestTime())

			require.NotPanics(t, func() { s.Hydrate(context.Background()) })

			assert.Equal(t, domainauth.StateAnonymous, s.State())
			assert.False(t, store.Present())
			assert.Equal(t, 1, store.Removals())
		})
	}
}

func TestSessionService_Hydrate_NoToken(t *testing.T) {
	store := mocks.NewMemoryTokenStore("")
	s := newTestSession(store, testutil.TestTime())

	s.Hydrate(context.Background())

	assert.Equal(t, domainauth.StateAnonymous, s.State())
	assert.Zero(t, store.Removals())
}

func TestSessionService_Hydrate_StoreErrorDegradesToAnonymous(t *testing.T) {
	store := mocks.NewMemoryTokenStore("whatever")
	store.Err = errors.New("redis down")
	s := newTestSession(store, testutil.TestTime())

	s.Hydrate(context.Background())

	assert.Equal(t, domainauth.StateAnonymous, s.State())
	assert.False(t, s.IsLoading())
}

func TestSessionService_Hydrate_RunsOnce(t *testing.T) {
	now := testutil.TestTime()
	store := mocks.NewMemoryTokenStore("")
	s := newTestSession(store, now)

	s.Hydrate(context.Background())
	require.NoError(t, store.SetToken(context.Background(), testutil.AdminToken(t, now), time.Hour))
	s.Hydrate(context.Background())

	assert.Equal(t, domainauth.StateAnonymous, s.State())
}

func TestSessionService_Hydrate_ConcurrentCallersSeeOneResult(t *testing.T) {
	now := testutil.TestTime()
	s := newTestSession(mocks.NewMemoryTokenStore(testutil.UserToken(t, now)), now)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Hydrate(context.Background())
		}()
	}
	wg.Wait()

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
}

func TestSessionService_Login(t *testing.T) {
	now := testutil.TestTime()
	store := mocks.NewMemoryTokenStore("")
	s := newTestSession(store, now)
	tok := testutil.UserToken(t, now)

	require.NoError(t, s.Login(context.Background(), tok))

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Equal(t, tok, store.Current())
	assert.Equal(t, DefaultTokenTTL, store.TTL())

	// Hydrate after login is a no-op.
	s.Hydrate(context.Background())
	assert.True(t, s.IsAuthenticated())
}

func TestSessionService_Login_InvalidTokenCommitsNothing(t *testing.T) {
	now := testutil.TestTime()
	expired := testutil.MintToken(t, testutil.TokenClaims{ID: 1, Role: "ADMIN", Exp: now.Add(-time.Minute)})

	for name, tok := range map[string]string{"malformed": "not-a-jwt", "expired": expired, "empty": ""} {
		t.Run(name, func(t *testing.T) {
			store := mocks.NewMemoryTokenStore("")
			s := newTestSession(store, now)

			err := s.Login(context.Background(), tok)

			require.ErrorIs(t, err, ErrInvalidToken)
			assert.False(t, store.Present())
			assert.Equal(t, domainauth.StateUninitialized, s.State())
		})
	}
}

func TestSessionService_Login_StoreFailure(t *testing.T) {
	now := testutil.TestTime()
	store := mocks.NewMemoryTokenStore("")
	store.Err = errors.New("write failed")
	s := newTestSession(store, now)

	err := s.Login(context.Background(), testutil.AdminToken(t, now))

	require.Error(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestSessionService_Logout_Idempotent(t *testing.T) {
	now := testutil.TestTime()
	store := mocks.NewMemoryTokenStore(testutil.AdminToken(t, now))
	s := newTestSession(store, now)
	s.Hydrate(context.Background())
	require.True(t, s.IsAdmin())

	require.NoError(t, s.Logout(context.Background()))
	first := s.Snapshot()
	require.NoError(t, s.Logout(context.Background()))

	assert.Equal(t, first, s.Snapshot())
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.False(t, store.Present())
}

func TestSessionService_Logout_FromAnyState(t *testing.T) {
	now := testutil.TestTime()
	states := map[string]func(*SessionService){
		"uninitialized": func(*SessionService) {},
		"anonymous":     func(s *SessionService) { s.Hydrate(context.Background()) },
		"authenticated": func(s *SessionService) { _ = s.Login(context.Background(), testutil.UserToken(t, now)) },
	}
	for name, prepare := range states {
		t.Run(name, func(t *testing.T) {
			store := mocks.NewMemoryTokenStore("")
			s := newTestSession(store, now)
			prepare(s)

			require.NoError(t, s.Logout(context.Background()))

			assert.Equal(t, domainauth.StateAnonymous, s.State())
			assert.False(t, store.Present())
		})
	}
}

func TestSessionService_Logout_StoreErrorStillAnonymous(t *testing.T) {
	now := testutil.TestTime()
	store := mocks.NewMemoryTokenStore("")
	s := newTestSession(store, now)
	require.NoError(t, s.Login(context.Background(), testutil.AdminToken(t, now)))

	store.Err = errors.New("delete failed")
	require.Error(t, s.Logout(context.Background()))
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Identity())
}

func TestSessionService_IsAdminIffAuthenticatedAdmin(t *testing.T) {
	now := testutil.TestTime()
	tests := []struct {
		role      string
		exp       time.Duration
		wantAdmin bool
	}{
		{"ADMIN", time.Hour, true},
		{"USER", time.Hour, false},
		{"ADMIN", -time.Hour, false},
		{"", time.Hour, false},
		{"admin", time.Hour, false},
		{"Admin", time.Hour, false},
		{" ADMIN ", time.Hour, false},
	}
	for _, tt := range tests {
		tok := testutil.MintToken(t, testutil.TokenClaims{ID: 1, Role: tt.role, Exp: now.Add(tt.exp)})
		s := newTestSession(mocks.NewMemoryTokenStore(tok), now)
		s.Hydrate(context.Background())
		assert.Equal(t, tt.wantAdmin, s.IsAdmin(), "role=%q exp=%v", tt.role, tt.exp)
		if s.IsAdmin() {
			assert.True(t, s.IsAuthenticated())
		}
	}
}

func TestSessionService_ExpiresWithinTheExpirySecond(t *testing.T) {
	now := testutil.TestTime()
	tok := testutil.MintToken(t, testutil.TokenClaims{ID: 1, Role: "ADMIN", Exp: now})

	s := newTestSession(mocks.NewMemoryTokenStore(tok), now)
	s.Hydrate(context.Background())
	assert.True(t, s.IsAuthenticated(), "exp equal to now is still valid")

	s = newTestSession(mocks.NewMemoryTokenStore(tok), now.Add(500*time.Millisecond))
	s.Hydrate(context.Background())
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
}

func TestSessionService_Snapshot(t *testing.T) {
	now := testutil.TestTime()
	s := newTestSession(mocks.NewMemoryTokenStore(testutil.AdminToken(t, now)), now)
	s.Hydrate(context.Background())

	snap := s.Snapshot()
	assert.Equal(t, domainauth.StateAuthenticated, snap.State)
	assert.True(t, snap.Authenticated)
	assert.True(t, snap.IsAdmin)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Admin", snap.User.DisplayName())

	// Mutating the snapshot must not leak into the session.
	snap.User.Role = domainauth.RoleUser
	assert.True(t, s.IsAdmin())
}
