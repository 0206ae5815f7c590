package main

import (
	"context"
	"os/signal"
	"syscall"

	"go-hrms/internal/app"
	"go-hrms/internal/config"
	"go-hrms/internal/shared/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	log := logger.MustInstall(cfg.Log)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunWorker(ctx, cfg, log); err != nil {
		log.Fatal("run worker failed", zap.Error(err))
	}
}
