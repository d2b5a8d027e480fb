package bootstrap

import (
	"context"
	"log/slog"

	"guri24/internal/infra/cache"
	"guri24/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisKV,
	),
)

// NewRedisKV returns a nil KV when Redis is disabled; the availability cache
// then misses on every read.
func NewRedisKV(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (cache.KV, error) {
	if !cfg.Redis.Enabled {
		logger.Info("Redis disabled, availability cache is off")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// reads fall back to Postgres, so an unreachable Redis is not fatal
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
