// Package cli implements the interactive marketplace client: a small REPL
// over the data service, with an online-status watcher that triggers
// reconciliation when connectivity returns.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/wheelmarket/wheelmarket/internal/client/api"
	"github.com/wheelmarket/wheelmarket/internal/client/buyer"
	"github.com/wheelmarket/wheelmarket/internal/client/config"
	"github.com/wheelmarket/wheelmarket/internal/client/services"
	"github.com/wheelmarket/wheelmarket/internal/client/store"
	"github.com/wheelmarket/wheelmarket/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled" // local-only configuration, no watcher
)

type App struct {
	config *config.Config
	log    logging.Logger

	data  *services.DataService
	buyer *buyer.Service
	gw    api.Gateway
	db    *sql.DB

	mode   atomic.Value // Mode
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	st := store.New(store.NewSQLiteKV(db, c.CacheQuotaBytes), log)
	gw := api.NewHTTPGateway(c.APIBaseURL, services.NewCredentials(st))

	app := &App{
		config: c,
		log:    log,
		data:   services.NewDataService(gw, st, log, c.LocalOnly),
		buyer:  buyer.NewService(st, log),
		gw:     gw,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	if c.LocalOnly {
		app.mode.Store(ModeDisabled)
	} else {
		app.mode.Store(ModeOffline)
	}
	return app, nil
}

func (a *App) Mode() Mode {
	return a.mode.Load().(Mode)
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode() != mode {
		a.mode.Store(mode)
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

// Run starts the online-status watcher (unless pinned local-only) and enters
// the REPL until the context ends or the user quits.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if !a.config.LocalOnly {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	return a.repl(ctx)
}

// StartOnlineStatusWatcher periodically pings the backend. Regaining
// connectivity triggers a reconciliation of locally modified collections.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.gw.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
				continue
			}

			wasOffline := a.Mode() == ModeOffline
			a.setMode(ctx, ModeOnline)
			if wasOffline {
				if err := a.data.SyncWhenOnline(ctx, true); err != nil {
					a.log.Warn(ctx, "reconciliation failed", "error", err)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
