package attendance

import (
	"github.com/david-vardanov/teambie/internal/middleware"
	"github.com/david-vardanov/teambie/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	attendanceGroup := r.Group("/attendance")
	attendanceGroup.Use(middleware.AuthMiddleware())
	{
		attendanceGroup.GET("/today", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetToday)
		attendanceGroup.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetRange)
		attendanceGroup.GET("/employees/:employee_id/today", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetEmployeeToday)

		// Manual adjustments carry an Idempotency-Key: a resent request
		// must not check anyone in twice.
		manual := attendanceGroup.Group("")
		manual.Use(middleware.ExtractUserID())
		if rdb != nil {
			manual.Use(middleware.Idempotency(rdb))
		}
		{
			manual.POST("/employees/:employee_id/check-in", middleware.RBACAuthorize(rbacService, "attendance", "manage"), handler.ManualCheckIn)
			manual.POST("/employees/:employee_id/check-out", middleware.RBACAuthorize(rbacService, "attendance", "manage"), handler.ManualCheckOut)
		}
	}
}
