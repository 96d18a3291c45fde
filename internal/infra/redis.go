package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"yatra/internal/config"
)

// NewRedisClient connects to Redis for the browse-endpoint response cache.
// Returns nil when the server is unreachable; callers treat a nil client as
// "caching disabled" and serve every request from the store.
func NewRedisClient(cfg *config.Config, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, response cache disabled", zap.Error(err))
		return nil
	}
	return client
}
