package middleware

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
)

// AdminMiddleware rejects requests whose identity lacks the admin
// role. Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !identity.IsAdmin() {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
