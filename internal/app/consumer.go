package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-academy/internal/attendance"
	"go-academy/internal/config"
	"go-academy/internal/dailystatus"
	"go-academy/internal/events"
	"go-academy/internal/messaging/kafka/consumer"
	"go-academy/internal/shared/clock"
	"go-academy/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const boardConsumerGroup = "go-academy-attendance-board"

func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis, 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	clk, err := clock.Load(cfg.Attendance.Timezone, clock.WithLogger(zap.L()))
	if err != nil {
		return err
	}

	attendanceService := attendance.NewService(sqlDB, attendance.NewRepository(gormDB), clk)
	boardCache := dailystatus.NewBoardCache(
		dailystatus.NewRedisKVStore(redisClient),
		cfg.Attendance.BoardCacheTTL,
		zap.L(),
	)
	refresher := dailystatus.NewBoardRefresher(attendanceService, attendanceService, boardCache, clk.Location())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.AttendanceRecordedTopic,
		GroupID:        boardConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAttendanceRecorded(ctx, reader, refresher, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
