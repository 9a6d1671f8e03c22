package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blogicum/config"
	_ "github.com/daniilsolovey/blogicum/docs"
	"github.com/daniilsolovey/blogicum/internal/app"
	"github.com/daniilsolovey/blogicum/internal/db"
)

var (
	flConfig    = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug     = flag.Bool("debug", false, "enable debug mode")
	flMigrate   = flag.Bool("migrate", true, "apply database migrations on start")
	flSecretKey = flag.String("secret-key", "", "session signing key, overrides App.SecretKey")
	cfg         config.Config
	lg          *slog.Logger
)

// @title Blogicum API
// @version 1.0
// @description Service endpoints of the Blogicum blog
// @host localhost:8080
// @BasePath /

func main() {
	// .env is optional, flags fall back to environment variables
	_ = godotenv.Load()
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	if *flSecretKey != "" {
		cfg.App.SecretKey = *flSecretKey
	}
	exitOnError(cfg.Validate())

	ctx := context.Background()

	if *flMigrate {
		connConfig, err := db.ConnConfig(&cfg.Database)
		exitOnError(err)
		exitOnError(db.RunMigrations(ctx, connConfig))
	}

	dbc := pg.Connect(&cfg.Database)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}
	defer dbc.Close()

	if *flDebug {
		dbc.AddQueryHook(db.NewQueryHook(lg))
	}

	service, err := app.New(ctx, &cfg, dbc, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
