package middleware

import (
	"github.com/gin-gonic/gin"

	"go-hrms/internal/shared/apperror"
)

const ContextUserIDValidated = "user_id_validated"

// ExtractUserID guarantees a non-empty user id for middleware keyed by user,
// such as Idempotency.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		c.Set(ContextUserIDValidated, userID)
		c.Next()
	}
}
