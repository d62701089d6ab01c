package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-evaluator-api/internal/application/ports"
)

const (
	CtxUserRole  = "userRole"
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
)

func AuthMiddleware(validator ports.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader || tokenStr == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := validator.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)

		c.Next()
	}
}

// UserID is the authenticated external id, empty outside AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}

func UserEmail(c *gin.Context) string {
	return c.GetString(CtxUserEmail)
}
