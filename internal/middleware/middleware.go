package middleware

import (
	"net/http"
	"strings"

	"resumatch/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer session token and puts the caller's
// identity (user_id, email) into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authorization header is required",
				"error":   "Missing authorization token",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid authorization header format",
				"error":   "Use format: Bearer {token}",
			})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// UserEmail returns the authenticated caller's email, or "" outside an
// authenticated route.
func UserEmail(c *gin.Context) string {
	value, ok := c.Get("email")
	if !ok {
		return ""
	}
	email, ok := value.(string)
	if !ok {
		return ""
	}
	return email
}
