package project

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	projects := r.Group("/projects")
	{
		projects.GET("", middleware.RBACAuthorize(rbacService, "project", "read"), handler.List)
		projects.GET("/:id", middleware.RBACAuthorize(rbacService, "project", "read"), handler.GetById)
		projects.POST("", middleware.RBACAuthorize(rbacService, "project", "manage"), handler.Create)
		projects.PUT("/:id", middleware.RBACAuthorize(rbacService, "project", "manage"), handler.Update)
	}

	employees := r.Group("/employees/:id/projects")
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "project", "read"), handler.ListAssignments)
		employees.POST("", middleware.RBACAuthorize(rbacService, "project", "manage"), handler.Assign)
		employees.PUT("/:project_id", middleware.RBACAuthorize(rbacService, "project", "manage"), handler.UpdateAssignment)
		employees.DELETE("/:project_id", middleware.RBACAuthorize(rbacService, "project", "manage"), handler.RemoveAssignment)
	}
}
