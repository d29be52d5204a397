package database

import (
	"context"
	"fmt"
	"log"

	"invoice-api/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a Redis client for the invoice list cache. Callers
// treat Redis as optional: a connection failure should degrade to an
// uncached service, not a crash.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}
	log.Printf("Successfully connected to Redis at %s, DB %d", cfg.Addr, cfg.DB)
	return rdb, nil
}
