package app

import (
	"context"
	"net/http"
	"time"

	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/config"
	"go-workforce/internal/shared/connection"
	"go-workforce/internal/shared/schema"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the store (and redis when configured), migrates if asked
// and mounts every route on router. The returned func releases connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established", zap.String("driver", cfg.DBDriver))

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if cfg.DBAutoMigrate {
		if err := schema.New(gormDB).Migrate(context.Background()); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("redis connection established")
	} else {
		logger.Info("REDIS_ADDR not set, running without cache and idempotency")
	}

	Mount(router, gormDB, rdb, cfg)

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}
	return cleanup, nil
}

// Mount installs the global middleware, the health check and every module.
func Mount(router *gin.Engine, gormDB *gorm.DB, rdb *redis.Client, cfg config.Config) {
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L().Named("http")),
	)

	router.GET("/healthz", healthHandler(gormDB))

	registerModules(router, gormDB, rdb, cfg)
}

func healthHandler(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := gormDB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
