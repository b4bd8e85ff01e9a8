package event

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
	eventsGroup := r.Group("/events")
	eventsGroup.Use(middleware.AuthMiddleware())
	{
		eventsGroup.GET("", middleware.RBACAuthorize(rbacService, "event", "read"), handler.GetRange)
		eventsGroup.GET("/pending", middleware.RBACAuthorize(rbacService, "event", "moderate"), handler.GetPending)
		eventsGroup.GET("/:id", middleware.RBACAuthorize(rbacService, "event", "read"), handler.GetById)
		eventsGroup.POST("", middleware.RBACAuthorize(rbacService, "event", "create"), handler.Create)
		eventsGroup.PUT("/:id", middleware.RBACAuthorize(rbacService, "event", "update"), handler.Update)
		eventsGroup.DELETE("/:id", middleware.RBACAuthorize(rbacService, "event", "update"), handler.Delete)

		// Moderation POSTs carry an Idempotency-Key so a double-clicked
		// approve button cannot be processed twice.
		moderate := eventsGroup.Group("")
		moderate.Use(middleware.ExtractUserID())
		if rdb != nil {
			moderate.Use(middleware.Idempotency(rdb))
		}
		{
			moderate.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "event", "moderate"), handler.Approve)
			moderate.POST("/:id/approve-day-off", middleware.RBACAuthorize(rbacService, "event", "moderate"), handler.ApproveDayOff)
			moderate.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "event", "moderate"), handler.Reject)
		}
	}
}
