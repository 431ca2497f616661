package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/courtside/internal/client/app"
	"github.com/dmitrijs2005/courtside/internal/client/cli"
	"github.com/dmitrijs2005/courtside/internal/client/config"
	"github.com/dmitrijs2005/courtside/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer a.Close()

	// Background loops: session inbox and push channel.
	go func() {
		if err := a.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "background loops stopped", "error", err)
		}
	}()

	cli.NewShell(a, logger).Run(ctx)
	stop()
}
