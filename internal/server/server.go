// Package server wires the HTTP router: middlewares, API routes, health,
// metrics and optional pprof endpoints.
package server

import (
	"context"
	"net/http"
	"slices"
	"time"

	"yourfuture/internal/config"
	"yourfuture/internal/handler"
	"yourfuture/internal/logger"
	"yourfuture/internal/metrics"
	"yourfuture/internal/middleware"
	"yourfuture/internal/service"
	"yourfuture/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options holds the HTTP settings of the server.
type Options struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	MetricsPath       string
	AllowedOrigins    []string
	PprofEnabled      bool
}

// NewOptions maps the HTTP section of cfg.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		PprofEnabled:      cfg.HTTP.PprofEnabled,
	}
}

// Deps are the collaborators the routes are served by.
type Deps struct {
	DB       Pinger
	JWT      *utils.JWTUtil
	Tokens   middleware.RevocationChecker
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Auth          service.AuthService
	Users         service.UserService
	Notifications service.NotificationService
	Startups      service.StartupService
	Meetups       service.MeetupService
	Vacancies     service.VacancyService
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}

	return cfg
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Deps, opts Options) (*gin.Engine, error) {
	if err := utils.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		cors.New(corsConfig(opts.AllowedOrigins)),
		deps.Metrics.Middleware(),
	)

	authMW := middleware.RequireAuth(deps.JWT, deps.Tokens)
	optionalAuthMW := middleware.OptionalAuth(deps.JWT, deps.Tokens)
	adminMW := middleware.AdminMiddleware()

	api := router.Group("")
	handler.NewAuthHandler(deps.Auth).RegisterAuthRoutes(api, authMW)
	handler.NewUserHandler(deps.Users, deps.Notifications).RegisterUserRoutes(api, authMW, adminMW)
	handler.NewStartupHandler(deps.Startups).RegisterStartupRoutes(api, authMW, optionalAuthMW, adminMW)
	handler.NewMeetupHandler(deps.Meetups).RegisterMeetupRoutes(api, authMW, optionalAuthMW, adminMW)
	handler.NewVacancyHandler(deps.Vacancies).RegisterVacancyRoutes(api, authMW, optionalAuthMW, adminMW)

	router.GET("/health", func(c *gin.Context) {
		if err := deps.DB.Ping(c.Request.Context()); err != nil {
			logger.Warn(c.Request.Context(), "health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	if opts.MetricsPath != "" {
		gatherer := deps.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		router.GET(opts.MetricsPath, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	if opts.PprofEnabled {
		router.Any(pprofPrefix+"*path", gin.WrapH(PprofMux()))
	}

	return router, nil
}

// New wires up and returns a configured *http.Server.
func New(deps Deps, opts Options) (*http.Server, error) {
	router, err := NewRouter(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           router,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
