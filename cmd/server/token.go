package main

import (
	"context"
	"fmt"

	"yourfuture/internal/config"
	"yourfuture/internal/logger"
	"yourfuture/internal/repository"
	"yourfuture/internal/service"
	"yourfuture/internal/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand groups operator helpers around access tokens.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access token helpers",
	}

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Generates an access token for the given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			userID, _ := cmd.Flags().GetInt64("user-id")

			pool, closePool := getPostgres(ctx, cfg)
			defer closePool()

			repos := repository.NewRepositories(pool)
			auth := service.NewAuthService(repos.Users, repos.Tokens, utils.NewJWTUtil(cfg.JWT.Secret, cfg.JWT.TTL))
			token, err := auth.IssueToken(ctx, userID)
			if err != nil {
				logger.Fatal(ctx, "could not issue token", zap.Error(err))
			}

			fmt.Println(token) //nolint: forbidigo
		},
	}
	issue.Flags().Int64("user-id", 0, "ID of an existing user")
	_ = issue.MarkFlagRequired("user-id")

	purge := &cobra.Command{
		Use:   "purge",
		Short: "Deletes revocations of tokens that have expired",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			pool, closePool := getPostgres(ctx, cfg)
			defer closePool()

			repos := repository.NewRepositories(pool)
			auth := service.NewAuthService(repos.Users, repos.Tokens, utils.NewJWTUtil(cfg.JWT.Secret, cfg.JWT.TTL))
			if _, err := auth.PurgeRevoked(ctx); err != nil {
				logger.Fatal(ctx, "could not purge revoked tokens", zap.Error(err))
			}
		},
	}

	cmd.AddCommand(issue, purge)

	return cmd
}
