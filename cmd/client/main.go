package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/wheelmarket/wheelmarket/internal/client/cli"
	"github.com/wheelmarket/wheelmarket/internal/client/config"
	"github.com/wheelmarket/wheelmarket/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.Default()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start client", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "client exited with error", "error", err)
		os.Exit(1)
	}
}
