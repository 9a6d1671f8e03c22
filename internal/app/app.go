package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/config"
	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/db"
	"github.com/daniilsolovey/blogicum/internal/media"
	"github.com/daniilsolovey/blogicum/internal/rest"
	"github.com/daniilsolovey/blogicum/internal/rpc"
)

const (
	rpcPath       = "/v1/rpc/"
	localMediaURL = "/media/"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(ctx context.Context, cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	repo := db.New(dbConnect)

	images, mediaDir, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	manager := blog.NewManager(repo, images, cfg.App.PageSize)

	handler, err := rest.NewHandler(
		manager,
		rest.NewSessions(cfg.App.SecretKey, cfg.App.SecureCookie),
		rest.Config{
			DenyPolicy: rest.DenyPolicy(cfg.App.DenyPolicy),
			MediaDir:   mediaDir,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("init handler: %w", err)
	}

	e := handler.RegisterRoutes()
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

// newStorage returns the image storage and, for local storage, the directory to serve.
func newStorage(ctx context.Context, cfg *config.Config) (media.Storage, string, error) {
	if cfg.Media.Storage == config.StorageS3 {
		storage, err := media.NewS3FromConfig(ctx, cfg.S3)
		if err != nil {
			return nil, "", fmt.Errorf("init s3 storage: %w", err)
		}
		return storage, "", nil
	}

	local := media.NewLocal(cfg.Media.Dir, localMediaURL)
	return local, local.Root(), nil
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	a.Logger.InfoContext(ctx, "service starting", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
