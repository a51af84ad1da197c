package vocab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Cache memoizes vocabulary lookups with a time-to-live. Implementations
// must tolerate concurrent readers; writes are idempotent, so re-resolving
// the same key and writing the same value is always safe. Expiry is
// TTL-only, there is no explicit invalidation.
type Cache interface {
	// Get unmarshals the cached value for key into dest and reports
	// whether the key was present and unexpired.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores the value under key for the given TTL.
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
}

// MemoryCache is an in-process TTL cache. Values are stored as their JSON
// encoding so both backends observe the same equality.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-process cache. Expired entries are swept at
// twice the default TTL.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(defaultTTL, 2*defaultTTL)}
}

// Get implements Cache.
func (c *MemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.store.Get(key)
	if !ok {
		return false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decoding cached value for %q: %w", key, err)
	}
	return true, nil
}

// Set implements Cache.
func (c *MemoryCache) Set(_ context.Context, key string, val any, ttl time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("encoding value for %q: %w", key, err)
	}
	c.store.Set(key, data, ttl)
	return nil
}

const redisKeyPrefix = "vocab:"

// RedisCache shares cached lookups between workers through Redis, for
// harvest pipelines that transform records in parallel across processes.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %q: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decoding cached value for %q: %w", key, err)
	}
	return true, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, val any, ttl time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("encoding value for %q: %w", key, err)
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}
