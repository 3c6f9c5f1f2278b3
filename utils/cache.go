package utils

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisClient is nil when REDIS_ADDR is unset; callers fall through to Mongo.
var RedisClient *redis.Client

// Cache keys for the homepage feeds.
const (
	CacheKeyAdvertised    = "home:advertised"
	CacheKeyLatestReviews = "home:latest-reviews"
)

// HomeCacheTTL keeps the homepage feeds fresh enough without hitting Mongo on
// every page load.
const HomeCacheTTL = 60 * time.Second

// InitRedis connects the optional homepage cache.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logrus.Warn("REDIS_ADDR not set, homepage cache disabled")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	logrus.WithField("addr", addr).Info("Homepage cache enabled")
}

// GetCached loads a cached JSON value into dest. The bool reports a hit; any
// redis error is returned so callers can log it and fall through.
func GetCached(ctx context.Context, key string, dest interface{}) (bool, error) {
	if RedisClient == nil {
		return false, nil
	}
	data, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		// Corrupt entry: drop it so the next read repopulates from Mongo,
		// and report a miss so the caller falls through now.
		RedisClient.Del(ctx, key)
		return false, err
	}
	return true, nil
}

// SetCached stores a JSON value with a TTL. No-op without redis.
func SetCached(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if RedisClient == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}
