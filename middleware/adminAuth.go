package middleware

import (
	"net/http"
	"strings"

	"atelier/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards admin endpoints. A missing, malformed, expired
// or non-admin token all produce the same generic 401.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if !utils.IsAdminToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
