package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/wheelmarket/wheelmarket/internal/logging"
	"github.com/wheelmarket/wheelmarket/internal/server"
	"github.com/wheelmarket/wheelmarket/internal/server/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.Default()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start server", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "server exited with error", "error", err)
		os.Exit(1)
	}
}
