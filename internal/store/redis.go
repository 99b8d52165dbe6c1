package store

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Zomujo/dial4inclusion/internal/config"
)

// NewRedisClient connects the lookup-cache backend. An unreachable Redis is
// tolerated: the cache then serves from its in-process map only.
func NewRedisClient(cfg config.RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis, user-lookup cache is in-process only", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return client
}
