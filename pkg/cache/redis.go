package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gamehub/pkg/config"

	"github.com/redis/go-redis/v9"
)

const tokenVersionTTL = time.Hour

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// TokenVersions caches per-user token versions so the auth middleware does not
// hit the database on every request. A nil *TokenVersions is valid and acts as
// a pass-through (cache disabled).
type TokenVersions struct {
	client *redis.Client
}

func NewTokenVersions(client *redis.Client) *TokenVersions {
	if client == nil {
		return nil
	}
	return &TokenVersions{client: client}
}

func (t *TokenVersions) key(userID string) string {
	return "tokver:" + userID
}

// Get returns the cached token version, or ok=false on miss or disabled cache.
func (t *TokenVersions) Get(ctx context.Context, userID string) (int, bool) {
	if t == nil {
		return 0, false
	}
	val, err := t.client.Get(ctx, t.key(userID)).Result()
	if err != nil {
		return 0, false
	}
	version, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return version, true
}

func (t *TokenVersions) Set(ctx context.Context, userID string, version int) {
	if t == nil {
		return
	}
	t.client.Set(ctx, t.key(userID), strconv.Itoa(version), tokenVersionTTL)
}

// Invalidate drops the cached version; the next request reloads from storage.
// Called after every tokenVersion increment so a forced logout is observed
// immediately instead of after cache expiry.
func (t *TokenVersions) Invalidate(ctx context.Context, userIDs ...string) {
	if t == nil || len(userIDs) == 0 {
		return
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = t.key(id)
	}
	t.client.Del(ctx, keys...)
}

// InvalidateAll drops every cached token version, used by force-logout-all.
func (t *TokenVersions) InvalidateAll(ctx context.Context) {
	if t == nil {
		return
	}
	iter := t.client.Scan(ctx, 0, "tokver:*", 0).Iterator()
	for iter.Next(ctx) {
		t.client.Del(ctx, iter.Val())
	}
}
