package main

import (
	"context"
	"os/signal"
	"syscall"

	"go-hrms/internal/app"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/logger"

	"github.com/gin-gonic/gin"
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

	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	infra, err := app.BuildApp(r, cfg, log)
	if err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}
	defer infra.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := bootstrap.NewHTTPServer(r, cfg.Server)
	if err := bootstrap.RunHTTPServer(ctx, server, bootstrap.NewZapAuditLogger(log)); err != nil {
		log.Error("http server stopped with error", zap.Error(err))
	}
}
