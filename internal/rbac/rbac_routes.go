package rbac

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	manage := middleware.RBACAuthorize(rbacService, "role", "manage")

	group := r.Group("/rbac")
	{
		group.POST("/enforce", manage, handler.Enforce)

		group.GET("/roles", manage, handler.ListRoles)
		group.POST("/roles", manage, handler.CreateRole)
		group.GET("/roles/:id", manage, handler.GetRole)
		group.PUT("/roles/:id", manage, handler.UpdateRole)
		group.DELETE("/roles/:id", manage, handler.DeleteRole)
		group.PUT("/roles/:id/permissions", manage, handler.SetRolePermissions)

		group.GET("/permissions", manage, handler.ListPermissions)
	}
}
