package course

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	courses := r.Group("/courses")
	{
		courses.GET("", middleware.RBACAuthorize(rbacService, "course", "read"), handler.List)
		courses.GET("/:id", middleware.RBACAuthorize(rbacService, "course", "read"), handler.GetById)
		courses.POST("", middleware.RBACAuthorize(rbacService, "course", "manage"), handler.Create)
		courses.PUT("/:id", middleware.RBACAuthorize(rbacService, "course", "manage"), handler.Update)
	}

	employees := r.Group("/employees/:id/courses")
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "course", "read"), handler.ListEnrollments)
		employees.POST("", middleware.RBACAuthorize(rbacService, "course", "enroll"), handler.Enroll)
		employees.PUT("/:enrollment_id", middleware.RBACAuthorize(rbacService, "course", "enroll"), handler.UpdateEnrollment)
	}
}
