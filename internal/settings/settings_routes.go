package settings

import (
	"github.com/david-vardanov/teambie/internal/middleware"
	"github.com/david-vardanov/teambie/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	group := r.Group("/settings")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("", middleware.RBACAuthorize(rbacService, "settings", "read"), handler.Get)
		group.PUT("", middleware.RBACAuthorize(rbacService, "settings", "update"), handler.Update)
	}
}
