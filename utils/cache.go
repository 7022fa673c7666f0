// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"appointments/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the Redis client for the free-slot response cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. The cache is an
// optional accelerator: when REDIS_ADDR is empty or the server is
// unreachable, nil is returned and callers run uncached.
func InitCache() *redis.Client {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis unreachable, slot cache disabled", zap.Error(err))
		return nil
	}
	CacheClient = client
	return client
}

// GetCacheClient returns the cache client, which may be nil when the
// cache is disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
