package policy

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	policies := r.Group("/policies")
	{
		policies.GET("", middleware.RBACAuthorize(rbacService, "policy", "read"), handler.List)
		policies.GET("/compliance", middleware.RBACAuthorize(rbacService, "policy", "compliance"), handler.ComplianceReport)
		policies.POST("", middleware.RBACAuthorize(rbacService, "policy", "manage"), handler.Create)
		policies.PUT("/:id", middleware.RBACAuthorize(rbacService, "policy", "manage"), handler.Update)
		policies.DELETE("/:id", middleware.RBACAuthorize(rbacService, "policy", "manage"), handler.Archive)
		policies.POST("/:id/acknowledge", middleware.RBACAuthorize(rbacService, "policy", "acknowledge"), handler.Acknowledge)
	}

	r.GET("/employees/:id/compliance", middleware.RBACAuthorize(rbacService, "policy", "read"), handler.EmployeeCompliance)
}
