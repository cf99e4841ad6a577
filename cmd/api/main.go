package main

import (
	"log"
	"time"

	"go-academy/internal/app"
	"go-academy/internal/bootstrap"
	"go-academy/internal/config"
	"go-academy/internal/shared/apperror"
	"go-academy/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	l, err := logger.New(cfg.Log.Level, cfg.Log.Format, "academy-api")
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	apperror.Init()
	r := gin.Default()

	// build dependency + routes
	cleanup, err := app.BuildApp(cfg, r)
	if err != nil {
		l.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(l),
		cleanup,
	)
}
