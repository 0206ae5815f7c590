package salary

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	employees := r.Group("/employees/:id")
	{
		employees.GET("/salary", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetCurrent)
		employees.PUT("/salary", middleware.RBACAuthorize(rbacService, "salary", "manage"), handler.Update)
		employees.GET("/salary/history", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetHistory)

		employees.GET("/tax", middleware.RBACAuthorize(rbacService, "tax", "read"), handler.GetTaxInfo)
		employees.PUT("/tax", middleware.RBACAuthorize(rbacService, "tax", "update"), handler.UpsertTaxInfo)
	}
}
