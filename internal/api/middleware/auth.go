package middleware

import (
	"errors"
	"strings"

	"slotb/internal/models"
	"slotb/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the bearer token and stores the resolved
// claims in the request context. A missing token is 401; a token that
// fails verification is 403.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, services.ErrInvalidToken) {
				c.JSON(403, gin.H{"error": "Invalid token"})
			} else {
				c.JSON(500, gin.H{"error": "Failed to verify user role"})
			}
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// Caller returns the authenticated claims set by AuthMiddleware.
func Caller(c *gin.Context) *services.Claims {
	claims, exists := c.Get("claims")
	if !exists {
		return nil
	}
	return claims.(*services.Claims)
}

// RequireAdmin rejects callers whose resolved role is not admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Caller(c)
		if claims == nil {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if claims.Role != models.RoleAdmin {
			c.JSON(403, gin.H{"error": "Admin privileges required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
