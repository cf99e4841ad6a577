package attendance

import (
	"go-academy/internal/middleware"
	"go-academy/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, jwtSecret string) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware(jwtSecret), middleware.ContextLogger(nil))
	{
		read := middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead)

		attendances.GET("", read, h.GetDaily)
		attendances.GET("/statuses", read, h.GetStatuses)
		attendances.GET("/monthly", read, h.GetMonthly)
		attendances.GET("/stats", read, h.GetStats)
		attendances.GET("/students/:studentId", read, h.GetStudentHistory)
		attendances.POST("/kiosk/lookup", read, h.LookupAttendanceNumber)
		attendances.GET("/kiosk/students/:studentId/records", read, h.GetDeviceRecords)
	}
}
