package department

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	departments := r.Group("/departments")
	{
		departments.GET("", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetAll)
		departments.POST("", middleware.RBACAuthorize(rbacService, "department", "create"), h.Create)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetById)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, "department", "update"), h.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, "department", "delete"), h.Delete)

		departments.GET("/:id/employees", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetEmployees)
		departments.POST("/:id/employees", middleware.RBACAuthorize(rbacService, "department", "update"), h.AddEmployee)
		departments.DELETE("/:id/employees/:employee_id", middleware.RBACAuthorize(rbacService, "department", "update"), h.RemoveEmployee)
	}
}
