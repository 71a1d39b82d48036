// File: services/providers/cache.go
package providers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tripgenius/config"
	"tripgenius/utils"

	"github.com/go-redis/redis/v8"
)

// redisCache stores provider responses as JSON blobs with a TTL.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache returns a Cache backed by the provider-cache Redis DB.
func NewRedisCache() Cache {
	return &redisCache{
		client: utils.GetProviderCacheClient(),
		ttl:    time.Duration(config.AppConfig.ProviderCacheTTLMinutes) * time.Minute,
	}
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// memoryCache is an in-process Cache for tests and single-node deployments.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// NewMemoryCache returns an in-process Cache with the given TTL.
func NewMemoryCache(ttl time.Duration) Cache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return false, nil
	}
	if err := json.Unmarshal(entry.raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = memoryEntry{raw: raw, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}
