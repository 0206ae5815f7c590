package attendance

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	attendance := r.Group("/attendance")
	{
		attendance.POST("", middleware.RBACAuthorize(rbacService, "attendance", "mark"), handler.Mark)
		attendance.POST("/clock-in",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "mark"),
			handler.ClockIn,
		)
		attendance.POST("/clock-out",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "mark"),
			handler.ClockOut,
		)

		attendance.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetAll)
		attendance.GET("/export", middleware.RBACAuthorize(rbacService, "attendance", "export"), handler.Export)
		attendance.GET("/:id", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetById)
		attendance.PUT("/:id", middleware.RBACAuthorize(rbacService, "attendance", "update"), handler.Update)
	}
}
