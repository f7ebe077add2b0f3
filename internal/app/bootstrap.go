package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/modelstore/internal/config"
	"github.com/ferdiebergado/modelstore/internal/middleware"
	"github.com/ferdiebergado/modelstore/internal/model"
	"github.com/ferdiebergado/modelstore/internal/platform/db"
	"github.com/ferdiebergado/modelstore/internal/platform/router"
	"github.com/ferdiebergado/modelstore/internal/platform/validation"
)

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if _, err := os.Stat(".env"); err == nil {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	repo, closeRepo, err := newModelRepository(signalCtx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeRepo()

	provider := &Provider{
		Repo:      repo,
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
	}

	apiServer := New(cfg, provider, middlewares)
	if err := apiServer.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return apiServer.Shutdown()
}

// newModelRepository selects the store variant configured at startup. Both
// variants satisfy the same contract; only initialization differs.
func newModelRepository(ctx context.Context, cfg *config.Store) (model.Repository, func(), error) {
	switch cfg.Kind {
	case config.StoreMemory:
		slog.Info("Using the in-memory model store.")
		return model.NewMemoryRepository(), func() {}, nil
	case config.StoreSQLite:
		conn, err := db.NewSQLiteDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		repo := model.NewSQLiteRepository(conn)
		if err := repo.Migrate(ctx); err != nil {
			if closeErr := conn.Close(); closeErr != nil {
				slog.Error("failed to close the database", "reason", closeErr)
			}
			return nil, nil, err
		}

		closeFn := func() {
			if err := conn.Close(); err != nil {
				slog.Error("failed to close the database", "reason", err)
			}
		}
		return repo, closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown store kind: %s", cfg.Kind)
	}
}
