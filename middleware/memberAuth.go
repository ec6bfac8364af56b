package middleware

import (
	"net/http"
	"strings"

	"atelier/utils"

	"github.com/gin-gonic/gin"
)

// MemberAuthMiddleware guards the members area.
func MemberAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		memberID, err := utils.MemberIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		c.Set("memberID", memberID)
		c.Next()
	}
}
