// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"nestcare/config"

	"github.com/go-redis/redis/v8"
)

// QuoteCacheClient is the Redis client holding quote sessions.
var QuoteCacheClient *redis.Client

// InitQuoteCache initializes the Redis client for quote-session caching.
func InitQuoteCache() {
	QuoteCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := QuoteCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Quote Cache): %v", err)
	}
}

// GetQuoteCacheClient returns the quote-session cache client.
func GetQuoteCacheClient() *redis.Client {
	if QuoteCacheClient == nil {
		InitQuoteCache()
	}
	return QuoteCacheClient
}
