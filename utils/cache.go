package utils

import (
	"context"
	"log"
	"time"

	"voyago/config"

	"github.com/go-redis/redis/v8"
)

// SearchCacheClient is the Redis client backing the search-result cache.
var SearchCacheClient *redis.Client

// InitSearchCache initializes the Redis client used to cache per-category
// search results.
func InitSearchCache() {
	SearchCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SearchCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Search Cache): %v", err)
	}
}

// GetSearchCacheClient returns the search cache client.
func GetSearchCacheClient() *redis.Client {
	if SearchCacheClient == nil {
		InitSearchCache()
	}
	return SearchCacheClient
}
