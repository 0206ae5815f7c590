package benefit

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	benefits := r.Group("/benefits")
	{
		benefits.GET("", middleware.RBACAuthorize(rbacService, "benefit", "read"), handler.List)
		benefits.POST("", middleware.RBACAuthorize(rbacService, "benefit", "manage"), handler.Create)
		benefits.PUT("/:id", middleware.RBACAuthorize(rbacService, "benefit", "manage"), handler.Update)
		benefits.DELETE("/:id", middleware.RBACAuthorize(rbacService, "benefit", "manage"), handler.Delete)
	}

	employees := r.Group("/employees/:id/benefits")
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "benefit", "read"), handler.ListForEmployee)
		employees.POST("", middleware.RBACAuthorize(rbacService, "benefit", "manage"), handler.Assign)
		employees.PUT("/:assignment_id", middleware.RBACAuthorize(rbacService, "benefit", "manage"), handler.UpdateAssignment)
		employees.DELETE("/:assignment_id", middleware.RBACAuthorize(rbacService, "benefit", "manage"), handler.EndAssignment)
	}
}
