package redis

// Package redis provides Redis-based adapters for the locker panel.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

const defaultPrefix = "locker-panel:token:"

// TokenStore keeps bearer tokens server-side. The browser only ever sees an
// opaque session id; the token itself lives in Redis with the login TTL.
type TokenStore struct {
	client redis.UniversalClient
	prefix string
}

// NewTokenStore creates a Redis-backed token store.
func NewTokenStore(client redis.UniversalClient) *TokenStore {
	return NewTokenStoreWithPrefix(client, defaultPrefix)
}

// NewTokenStoreWithPrefix creates a Redis token store with a custom key prefix.
func NewTokenStoreWithPrefix(client redis.UniversalClient, prefix string) *TokenStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &TokenStore{client: client, prefix: prefix}
}

// Bind returns a ports.TokenStore whose session id is held by ids (usually a cookie store).
func (s *TokenStore) Bind(ids ports.TokenStore) *BoundTokenStore {
	return &BoundTokenStore{store: s, ids: ids}
}

// BoundTokenStore resolves the token for one browser session.
type BoundTokenStore struct {
	store *TokenStore
	ids   ports.TokenStore
}

var _ ports.TokenStore = (*BoundTokenStore)(nil)

func (b *BoundTokenStore) Token(ctx context.Context) (string, error) {
	id, err := b.ids.Token(ctx)
	if err != nil || id == "" {
		return "", err
	}

	tok, err := b.store.client.Get(ctx, b.store.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return tok, nil
}

// SetToken stores token under a fresh session id and hands the id to the id store.
func (b *BoundTokenStore) SetToken(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if ttl <= 0 {
		return errors.New("token ttl must be positive")
	}

	// Drop whatever the previous id pointed at.
	if old, err := b.ids.Token(ctx); err == nil && old != "" {
		if delErr := b.store.client.Del(ctx, b.store.prefix+old).Err(); delErr != nil {
			return fmt.Errorf("redis del: %w", delErr)
		}
	}

	id := uuid.NewString()
	if err := b.store.client.Set(ctx, b.store.prefix+id, token, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return b.ids.SetToken(ctx, id, ttl)
}

func (b *BoundTokenStore) RemoveToken(ctx context.Context) error {
	id, err := b.ids.Token(ctx)
	if err != nil {
		return err
	}
	if id != "" {
		if delErr := b.store.client.Del(ctx, b.store.prefix+id).Err(); delErr != nil {
			return fmt.Errorf("redis del: %w", delErr)
		}
	}
	return b.ids.RemoveToken(ctx)
}
