package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"emi-calculator/internal/app"
	"emi-calculator/internal/config"
	"emi-calculator/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("cannot initialize logging: %v", err)
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, logging.Logger); err != nil {
		logging.Logger.Error("server failed", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}
