// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tripgenius/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient is the dedicated client for conversation session state.
	SessionCacheClient *redis.Client
	// ProviderCacheClient is the dedicated client for cached provider responses.
	ProviderCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for session storage (using DB from AppConfig).
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for session storage.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitProviderCache initializes the Redis client for provider response caching.
func InitProviderCache() {
	ProviderCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ProviderCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Provider Cache): %v", err)
	}
}

// GetProviderCacheClient returns the Redis client for provider response caching.
func GetProviderCacheClient() *redis.Client {
	if ProviderCacheClient == nil {
		InitProviderCache()
	}
	return ProviderCacheClient
}
