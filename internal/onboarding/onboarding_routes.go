package onboarding

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	for _, kind := range []string{KindOnboarding, KindOffboarding} {
		templates := r.Group("/" + kind + "/tasks")
		{
			templates.GET("", middleware.RBACAuthorize(rbacService, "onboarding", "manage"), handler.ListTemplates(kind))
			templates.POST("", middleware.RBACAuthorize(rbacService, "onboarding", "manage"), handler.CreateTemplate(kind))
			templates.PUT("/:id", middleware.RBACAuthorize(rbacService, "onboarding", "manage"), handler.UpdateTemplate(kind))
		}

		employees := r.Group("/employees/:id/" + kind)
		{
			employees.GET("", middleware.RBACAuthorize(rbacService, "onboarding", "read"), handler.ListEmployeeTasks(kind))
			employees.POST("/assign", middleware.RBACAuthorize(rbacService, "onboarding", "manage"), handler.Assign(kind))
			employees.PUT("/:task_id", middleware.RBACAuthorize(rbacService, "onboarding", "manage"), handler.UpdateEmployeeTask(kind))
		}
	}
}
