package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/bokuwaitgel/smart-locker-panel/internal/mocks/auth"
	"github.com/bokuwaitgel/smart-locker-panel/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestTokenStore_SetAndGet(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	ids := mocks.NewMemoryTokenStore("")
	store := NewTokenStoreWithPrefix(client, "test:token:").Bind(ids)

	require.NoError(t, store.SetToken(ctx, "jwt-value", time.Minute))

	id := ids.Current()
	require.NotEmpty(t, id)
	assert.NotEqual(t, "jwt-value", id, "browser must only see the opaque id")

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-value", tok)

	ttl, err := client.TTL(ctx, "test:token:"+id).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestTokenStore_SetRotatesID(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	ids := mocks.NewMemoryTokenStore("")
	store := NewTokenStoreWithPrefix(client, "test:token:").Bind(ids)

	require.NoError(t, store.SetToken(ctx, "first", time.Minute))
	first := ids.Current()
	require.NoError(t, store.SetToken(ctx, "second", time.Minute))

	assert.NotEqual(t, first, ids.Current())
	exists, err := client.Exists(ctx, "test:token:"+first).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestTokenStore_RemoveIsIdempotent(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	ids := mocks.NewMemoryTokenStore("")
	store := NewTokenStore(client).Bind(ids)
	require.NoError(t, store.SetToken(ctx, "jwt", time.Minute))
	id := ids.Current()

	require.NoError(t, store.RemoveToken(ctx))
	require.NoError(t, store.RemoveToken(ctx))

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.False(t, ids.Present())
	exists, err := client.Exists(ctx, defaultPrefix+id).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestTokenStore_UnknownIDReadsEmpty(t *testing.T) {
	client := setupTestRedis(t)

	store := NewTokenStore(client).Bind(mocks.NewMemoryTokenStore("does-not-exist"))
	tok, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestTokenStore_Validation(t *testing.T) {
	store := NewTokenStore(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})).Bind(mocks.NewMemoryTokenStore(""))

	require.Error(t, store.SetToken(context.Background(), "", time.Minute))
	require.Error(t, store.SetToken(context.Background(), "tok", 0))
}
