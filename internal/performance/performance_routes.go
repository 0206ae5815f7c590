package performance

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	r.GET("/performance/reports", middleware.RBACAuthorize(rbacService, "performance", "report"), handler.Report)

	ratings := r.Group("/employees/:id/ratings")
	{
		ratings.GET("", middleware.RBACAuthorize(rbacService, "performance", "read"), handler.ListRatings)
		ratings.POST("", middleware.RBACAuthorize(rbacService, "performance", "write"), handler.CreateRating)
		ratings.PUT("/:rating_id", middleware.RBACAuthorize(rbacService, "performance", "write"), handler.UpdateRating)
		ratings.DELETE("/:rating_id", middleware.RBACAuthorize(rbacService, "performance", "write"), handler.DeleteRating)
	}

	reviews := r.Group("/employees/:id/reviews")
	{
		reviews.GET("", middleware.RBACAuthorize(rbacService, "performance", "read"), handler.ListReviews)
		reviews.POST("", middleware.RBACAuthorize(rbacService, "performance", "write"), handler.CreateReview)
		reviews.PUT("/:review_id", middleware.RBACAuthorize(rbacService, "performance", "write"), handler.UpdateReview)
		reviews.DELETE("/:review_id", middleware.RBACAuthorize(rbacService, "performance", "write"), handler.DeleteReview)
	}
}
