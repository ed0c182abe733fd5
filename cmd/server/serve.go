package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"yourfuture/internal/config"
	"yourfuture/internal/logger"
	"yourfuture/internal/metrics"
	"yourfuture/internal/repository"
	"yourfuture/internal/server"
	"yourfuture/internal/service"
	"yourfuture/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) func(ctx context.Context) {
	if cfg.Environment == logger.ProductionEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}

	repos := repository.NewRepositories(pool)
	tx := repository.NewTransactor(pool)
	jwtUtil := utils.NewJWTUtil(cfg.JWT.Secret, cfg.JWT.TTL)
	m := metrics.New(prometheus.DefaultRegisterer)

	srv, err := server.New(server.Deps{
		DB:            pool,
		JWT:           jwtUtil,
		Tokens:        repos.Tokens,
		Metrics:       m,
		Gatherer:      prometheus.DefaultGatherer,
		Auth:          service.NewAuthService(repos.Users, repos.Tokens, jwtUtil),
		Users:         service.NewUserService(repos.Users),
		Notifications: service.NewNotificationService(repos.Users, repos.Notifications, m),
		Startups:      service.NewStartupService(repos, tx, m),
		Meetups:       service.NewMeetupService(repos, tx, m),
		Vacancies:     service.NewVacancyService(repos, tx, m),
	}, server.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pool, closePool := getPostgres(ctx, cfg)
			defer closePool()

			if cfg.Database.AutoMigrate {
				if err := config.Migrate(ctx, pool); err != nil {
					logger.Fatal(ctx, "could not migrate database", zap.Error(err))
				}
			}
			seedAdmin(ctx, cfg, pool)

			stopWebserver := setupServer(ctx, cfg, pool)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
