package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment selects the logger setup (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr              string        `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		MaxHeaderBytes    int           `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins feeds the CORS middleware; "*" allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
		// PprofEnabled mounts net/http/pprof under /debug/pprof/
		PprofEnabled bool `env:"HTTP_PPROF_ENABLED" env-default:"false" yaml:"pprofEnabled"`
	} `yaml:"http"`

	Database struct {
		Username           string        `env:"DATABASE_USERNAME" env-default:"postgres" yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD" env-default:"postgres" yaml:"password"`
		Host               string        `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		Name               string        `env:"DATABASE_NAME" env-default:"yourfuture" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		MinIdleConnections int           `env:"DATABASE_MIN_IDLE_CONNECTIONS" env-default:"2" yaml:"minIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// ConnectRetries bounds the startup connection loop
		ConnectRetries  int           `env:"DATABASE_CONNECT_RETRIES" env-default:"5" yaml:"connectRetries"`
		ConnectInterval time.Duration `env:"DATABASE_CONNECT_INTERVAL" env-default:"5s" yaml:"connectInterval"`
		// AutoMigrate applies pending migrations when the server starts
		AutoMigrate bool `env:"DATABASE_AUTO_MIGRATE" env-default:"true" yaml:"autoMigrate"`
	} `yaml:"database"`

	JWT struct {
		Secret string        `env:"JWT_SECRET_KEY" yaml:"secret"`
		TTL    time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"jwt"`

	Admin struct {
		// Password of the seeded "admin" account
		Password string `env:"ADMIN_PASSWORD" yaml:"password"`
	} `yaml:"admin"`

	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads .env (if present) into the environment, then the yaml file at
// configPath overlaid by environment variables. A missing yaml file falls
// back to environment variables only.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is not set (JWT_SECRET_KEY)")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("jwt ttl must be positive")
	}

	return nil
}
