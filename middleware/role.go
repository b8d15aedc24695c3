package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles aborts the request unless the authenticated account holds
// one of the given roles. Must run after JWTAuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		role, ok := roleVal.(string)
		if !exists || !ok || !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
