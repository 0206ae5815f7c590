package main

import (
	"context"
	"os/signal"
	"syscall"

	"go-hrms/internal/app"
	"go-hrms/internal/config"
	"go-hrms/internal/shared/apperror"
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

	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg, log); err != nil {
		log.Fatal("run consumer failed", zap.Error(err))
	}
}
