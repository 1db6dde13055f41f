package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route on the role claim attached by AuthMiddleware.
// Must be registered after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextUserRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "role_not_in_context"})
			return
		}

		role, _ := roleVal.(string)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
	}
}
