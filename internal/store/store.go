// Package store opens the configured persistence backend.
package store

import (
	"context"
	"fmt"

	"github.com/SanderGeraedts/InkoopPlanner/internal/config"
	"github.com/SanderGeraedts/InkoopPlanner/internal/service"
	"github.com/SanderGeraedts/InkoopPlanner/internal/store/pgstore"
	"github.com/SanderGeraedts/InkoopPlanner/internal/store/redisstore"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Open connects to the backend named by cfg.StoreBackend and verifies the
// connection. The returned close func releases the connection pool.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (service.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		log.Info("connected to database", zap.String("backend", cfg.StoreBackend))
		return pgstore.New(pool), pool.Close, nil

	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		log.Info("connected to redis",
			zap.String("backend", cfg.StoreBackend),
			zap.String("namespace", cfg.RedisNamespace))
		return redisstore.New(rdb, cfg.RedisNamespace), func() { _ = rdb.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
