package leave

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	types := r.Group("/leave-types")
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "leave_type", "read"), handler.ListTypes)
		types.POST("", middleware.RBACAuthorize(rbacService, "leave_type", "manage"), handler.CreateType)
		types.PUT("/:id", middleware.RBACAuthorize(rbacService, "leave_type", "manage"), handler.UpdateType)
		types.DELETE("/:id", middleware.RBACAuthorize(rbacService, "leave_type", "manage"), handler.DeleteType)
	}

	employees := r.Group("/employees/:id")
	{
		employees.GET("/leave-balance", middleware.RBACAuthorize(rbacService, "leave_balance", "read"), handler.GetBalances)
		employees.POST("/leave-balance", middleware.RBACAuthorize(rbacService, "leave_balance", "manage"), handler.CreateBalance)
		employees.PUT("/leave-balance", middleware.RBACAuthorize(rbacService, "leave_balance", "manage"), handler.UpdateBalance)

		employees.GET("/leaves", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetByEmployee)
		employees.POST("/leaves",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "leave", "apply"),
			handler.Apply,
		)
	}

	leaves := r.Group("/leaves")
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read_all"), handler.GetAll)
		leaves.PUT("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Approve)
		leaves.PUT("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Reject)
		leaves.DELETE("/:id", middleware.RBACAuthorize(rbacService, "leave", "cancel"), handler.Cancel)
	}
}
