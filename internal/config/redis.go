package config

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient builds a Redis client from REDIS_ADDR / REDIS_PASSWORD /
// REDIS_DB and verifies connectivity with a short ping. Redis is optional
// infrastructure: on failure the function returns nil and callers are
// expected to run without caching and rate limiting.
func NewRedisClient() *redis.Client {
	addr := getenv("REDIS_ADDR", "localhost:6379")

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       envInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).WithField("addr", addr).Warn("redis unavailable, cache and rate limiting disabled")
		_ = client.Close()
		return nil
	}
	return client
}
