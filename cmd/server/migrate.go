package main

import (
	"context"

	"yourfuture/internal/config"
	"yourfuture/internal/logger"
	"yourfuture/internal/repository"
	"yourfuture/internal/service"
	"yourfuture/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedAdmin creates the admin account when ADMIN_PASSWORD is configured.
func seedAdmin(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) {
	if cfg.Admin.Password == "" {
		logger.Warn(ctx, "admin password is not set, skipping admin seeding")
		return
	}

	repos := repository.NewRepositories(pool)
	auth := service.NewAuthService(repos.Users, repos.Tokens, utils.NewJWTUtil(cfg.JWT.Secret, cfg.JWT.TTL))
	if err := auth.EnsureAdmin(ctx, cfg.Admin.Password); err != nil {
		logger.Fatal(ctx, "could not seed admin user", zap.Error(err))
	}
}

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose and seeds the admin.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			pool, closePool := getPostgres(ctx, cfg)
			defer closePool()

			if err := config.Migrate(ctx, pool); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			seedAdmin(ctx, cfg, pool)
		},
	}

	return cmd
}
