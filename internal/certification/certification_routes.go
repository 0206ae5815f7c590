package certification

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	types := r.Group("/certification-types")
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "certification_type", "read"), handler.ListTypes)
		types.POST("", middleware.RBACAuthorize(rbacService, "certification_type", "manage"), handler.CreateType)
		types.PUT("/:id", middleware.RBACAuthorize(rbacService, "certification_type", "manage"), handler.UpdateType)
		types.DELETE("/:id", middleware.RBACAuthorize(rbacService, "certification_type", "manage"), handler.DeleteType)
	}

	employees := r.Group("/employees/:id/certifications")
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "certification", "read"), handler.ListForEmployee)
		employees.POST("", middleware.RBACAuthorize(rbacService, "certification", "write"), handler.Create)
		employees.PUT("/:cert_id", middleware.RBACAuthorize(rbacService, "certification", "write"), handler.Update)
		employees.DELETE("/:cert_id", middleware.RBACAuthorize(rbacService, "certification", "write"), handler.Delete)
	}
}
