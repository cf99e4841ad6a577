package dailystatus

import (
	"slices"
	"time"

	"go-academy/internal/middleware"
	"go-academy/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type RouteConfig struct {
	JWTSecret      string
	Redis          *redis.Client
	IdempotencyTTL time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, cfg RouteConfig) {
	board := r.Group("/attendance-board")
	board.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.ContextLogger(nil))
	{
		read := middleware.RBACAuthorize(rbacService, rbac.ResourceBoard, rbac.ActionRead)

		board.GET("", read, h.GetBoard)
		board.GET("/snapshot", read, h.GetSnapshot)
		board.GET("/ws", read, h.Stream)
		board.POST("/reload", middleware.RBACAuthorize(rbacService, rbac.ResourceBoard, rbac.ActionReload), h.Reload)

		record := []gin.HandlerFunc{
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionCreate),
			middleware.RateLimitByUser(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		}
		if cfg.Redis != nil {
			record = append(record, middleware.Idempotency(cfg.Redis, cfg.IdempotencyTTL))
		}
		record = slices.Clip(record)
		board.POST("/students/:studentId/status", append(record, h.RecordStatus)...)
		board.POST("/kiosk/records", append(record, h.RecordKiosk)...)
	}
}
