package app

import (
	"database/sql"
	"time"

	"go-academy/internal/attendance"
	"go-academy/internal/config"
	"go-academy/internal/dailystatus"
	"go-academy/internal/messaging/kafka"
	"go-academy/internal/middleware"
	"go-academy/internal/rbac"
	"go-academy/internal/rbac/infra"
	"go-academy/internal/shared/clock"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	idempotencyTTL = 24 * time.Hour

	// Multiplier over the per-user record limit for the per-IP limit on all API routes.
	ipRateFactor = 10
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	clk *clock.Clock,
) (*dailystatus.Registry, error) {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(enforcer)
	if err := rbacService.LoadPolicy(rbac.DefaultPolicies, rbac.DefaultInheritance); err != nil {
		return nil, err
	}

	// --- Services ---
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, outboxRepo, clk)
	sessions := dailystatus.NewRegistry(
		attendanceService,
		attendanceService,
		clk,
		zap.L(),
		dailystatus.WithFetchTimeout(cfg.Attendance.FetchTimeout),
	)
	boardCache := dailystatus.NewBoardCache(
		dailystatus.NewRedisKVStore(rdb),
		cfg.Attendance.BoardCacheTTL,
		zap.L(),
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	boardHandler := dailystatus.NewHandler(
		sessions,
		attendanceService,
		attendanceService,
		boardCache,
		clk,
		clk.Location(),
		zap.L(),
	)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS*ipRateFactor), cfg.RateLimit.Burst*ipRateFactor))
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, cfg.JWTSecret)
		dailystatus.RegisterRoutes(api, boardHandler, rbacService, dailystatus.RouteConfig{
			JWTSecret:      cfg.JWTSecret,
			Redis:          rdb,
			IdempotencyTTL: idempotencyTTL,
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
		})
	}

	return sessions, nil
}
