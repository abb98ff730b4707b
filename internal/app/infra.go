package app

import (
	"context"
	"database/sql"

	"github.com/rdiego26/muti-user-task-manager-api/internal/config"
	"github.com/rdiego26/muti-user-task-manager-api/internal/db"
	"github.com/rdiego26/muti-user-task-manager-api/internal/logger"
	"github.com/rdiego26/muti-user-task-manager-api/internal/redis"

	_ "github.com/lib/pq"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunBootstrapMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	infra := &Infra{
		DB: &db.DB{DB: sqlDB},
	}

	// The memory session backend needs no Redis connection at all.
	if cfg.SessionBackend != "memory" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}

		logger.Info("redis ready", nil)
		infra.Redis = redisClient
	}

	return infra, nil
}
