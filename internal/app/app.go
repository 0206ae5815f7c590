package app

import (
	"database/sql"
	"fmt"

	"go-hrms/internal/config"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the connections a binary owns for its lifetime.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.Port,
		cfg.SSLMode,
		cfg.MaxRetries,
	)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return gormDB, sqlDB, nil
}

// BuildApp connects infrastructure, runs migrations when enabled and mounts
// every module on router. The returned Infra must be closed by the caller.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	gormDB, sqlDB, err := connectDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	infra := &Infra{GormDB: gormDB, SQLDB: sqlDB}

	if cfg.Database.AutoMigrate {
		if err := connection.RunMigrations(sqlDB, logger); err != nil {
			infra.Close()
			return nil, err
		}
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Database.MaxRetries)
	if err != nil {
		infra.Close()
		return nil, err
	}
	infra.Redis = rdb

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.AccessLog(logger),
		middleware.CORS(cfg.Server.CORS.AllowOrigins),
	)

	if err := registerModules(router, cfg, infra, logger); err != nil {
		infra.Close()
		return nil, err
	}
	return infra, nil
}
