package middleware

import (
	"go-academy/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger. Register it after RequestID and
// AuthMiddleware so the ids are already known. A nil logger means zap.L().
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		base := logger
		if base == nil {
			base = zap.L()
		}
		ctx := c.Request.Context()
		meta := contextutil.ExtractMetadata(ctx)

		reqLogger := base.With(
			zap.String("request_id", meta.RequestID),
			zap.String("user_id", meta.UserID),
			zap.String("tenant_id", meta.TenantID),
		)

		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()
	}
}
