package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/jobdesk/internal/buildinfo"
	"github.com/dmitrijs2005/jobdesk/internal/client/cli"
	"github.com/dmitrijs2005/jobdesk/internal/client/config"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.Setup(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

	if err := app.Close(); err != nil {
		logger.Error(ctx, "shutdown", "error", err)
	}
}
