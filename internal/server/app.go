// Package server assembles the marketplace API: Postgres document storage,
// the Redis token store, media presigning, and the echo HTTP surface.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wheelmarket/wheelmarket/internal/logging"
	"github.com/wheelmarket/wheelmarket/internal/server/config"
	"github.com/wheelmarket/wheelmarket/internal/server/handlers"
	"github.com/wheelmarket/wheelmarket/internal/server/media"
	"github.com/wheelmarket/wheelmarket/internal/server/repositories/repomanager"
	"github.com/wheelmarket/wheelmarket/internal/server/services"
	"github.com/wheelmarket/wheelmarket/internal/server/tokens"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	tokens *tokens.Store
	echo   *echo.Echo
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	repos := repomanager.NewPostgresRepositoryManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	tokenStore := tokens.NewStore(cfg.RedisAddr, cfg.RefreshTokenValidityDuration)

	vehicleSvc := services.NewVehicleService(db, repos)
	userSvc := services.NewUserService(db, repos, tokenStore, cfg, log)
	mediaSvc := media.NewService(cfg)

	e := echo.New()
	e.HideBanner = true
	handlers.Register(e,
		handlers.NewVehicleHandler(vehicleSvc),
		handlers.NewUserHandler(userSvc),
		handlers.NewMediaHandler(mediaSvc),
		handlers.NewHealthHandler(db),
	)

	return &App{config: cfg, log: log, db: db, tokens: tokenStore, echo: e}, nil
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := a.echo.Start(a.config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	a.log.Info(ctx, "server started", "addr", a.config.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.echo.Shutdown(shutdownCtx); err != nil {
		a.log.Error(shutdownCtx, "shutdown failed", "error", err)
	}
	if err := a.tokens.Close(); err != nil {
		a.log.Warn(shutdownCtx, "closing token store", "error", err)
	}
	return a.db.Close()
}
