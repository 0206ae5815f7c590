package auth

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /auth on the public group. authMiddleware guards the
// endpoints that need a signed-in caller.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/token", middleware.RateLimitByIP(0.08, 5), handler.Token)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
		auth.POST("/logout", handler.Logout)
		auth.POST("/register", middleware.RateLimitByIP(0.1, 1), handler.Register)
		auth.POST("/superuser", middleware.RateLimitByIP(0.05, 1), handler.Superuser)

		auth.GET("/me", authMiddleware, middleware.RateLimitByUser(2, 5), handler.Me)
		auth.PUT("/password", authMiddleware, middleware.RateLimitByUser(0.1, 2), handler.ChangePassword)
	}
}
