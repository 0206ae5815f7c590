package payroll

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb redis.Cmdable) {
	employees := r.Group("/employees/:id")
	{
		employees.POST("/payslip",
			middleware.RBACAuthorize(rbacService, "payslip", "generate"),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			handler.Generate,
		)
		employees.GET("/payslips", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.ListByEmployee)
	}

	payslips := r.Group("/payslips")
	{
		payslips.GET("/:id/download",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "payslip", "read"),
			handler.Download,
		)
		payslips.POST("/run",
			middleware.RBACAuthorize(rbacService, "payslip", "generate"),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			handler.Run,
		)
	}
}
