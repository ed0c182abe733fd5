// Package main provides the CLI entrypoint of the listing platform. It wires
// the subcommands (serve, migrate, token), loads configuration and
// initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"yourfuture/internal/config"
	"yourfuture/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres connects the pool and returns it with a cleanup function.
func getPostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, func()) {
	pool, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "could not connect to postgres", zap.Error(err))
	}

	return pool, func() {
		logger.Info(ctx, "closing postgres pool...")
		pool.Close()
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "yourfuture",
		Short: "Moderated listing platform for startups, meetups and vacancies",
	}

	// cobra parses flags only on Execute; the config path is needed before
	// that, so it is read with the standard flag package too.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		tokenCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs keeps only the -c/--config flag and its value so the standard
// flag package does not stop at subcommand names.
func configArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "-c" || a == "--config" || a == "-config":
			if i+1 < len(args) {
				out = append(out, "-c", args[i+1])
				i++
			}
		case len(a) > 3 && a[:3] == "-c=":
			out = append(out, a)
		case len(a) > 9 && a[:9] == "--config=":
			out = append(out, "-c="+a[9:])
		}
	}
	return out
}
