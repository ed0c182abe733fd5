package config

import (
	"context"
	"fmt"
	"time"

	"yourfuture"
	"yourfuture/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// DSN builds the libpq connection string for the configured database.
func (c *Config) DSN() string {
	db := c.Database
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.Username, db.Password, db.Name, db.SslMode)
}

// ConnectDB establishes a connection pool to PostgreSQL, retrying while the
// server is unreachable.
func ConnectDB(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if cfg.Database.MaxOpenConnections > 0 {
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConnections) //nolint: gosec
	}
	if cfg.Database.MinIdleConnections > 0 {
		poolCfg.MinConns = int32(cfg.Database.MinIdleConnections) //nolint: gosec
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	}
	if cfg.Database.ConnMaxIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.Database.ConnMaxIdleTime
	}

	maxRetries := max(cfg.Database.ConnectRetries, 1)
	retryInterval := cfg.Database.ConnectInterval

	var pool *pgxpool.Pool
	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				logger.Info(ctx, "connected to postgres", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Name))
				return pool, nil
			}
			pool.Close()
		}
		logger.Warn(ctx, "could not connect to postgres, retrying",
			zap.Int("attempt", i+1), zap.Int("max_attempts", maxRetries),
			zap.Duration("retry_in", retryInterval), zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// Migrate applies the embedded goose migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	// goose works on database/sql; wrap the pool instead of opening a second one
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(yourfuture.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	logger.Info(ctx, "migrations applied")
	return nil
}
