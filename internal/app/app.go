package app

import (
	"go-academy/internal/config"
	"go-academy/internal/shared/clock"
	"go-academy/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on router. The returned
// cleanup closes live sessions and connections; call it after the HTTP server has stopped.
func BuildApp(cfg *config.Config, router *gin.Engine) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis, 5)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	clk, err := clock.Load(cfg.Attendance.Timezone, clock.WithLogger(zap.L()))
	if err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	sessions, err := registerModules(router, cfg, sqlDB, gormDB, redisClient, clk)
	if err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	return func() {
		sessions.Close()
		if err := redisClient.Close(); err != nil {
			logger.Warn("close redis failed", zap.Error(err))
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}, nil
}
