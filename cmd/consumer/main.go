package main

import (
	"log"

	"go-academy/internal/app"
	"go-academy/internal/config"
	"go-academy/internal/shared/apperror"
	"go-academy/internal/shared/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	l, err := logger.New(cfg.Log.Level, cfg.Log.Format, "academy-consumer")
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	apperror.Init()

	if err := app.RunConsumer(cfg); err != nil {
		l.Fatal("run consumer failed", zap.Error(err))
	}
}
