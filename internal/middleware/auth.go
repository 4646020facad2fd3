// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"errors"
	"strings"

	"movieflix/pkg/auth"
	"movieflix/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UsernameKey = "username"
	RoleKey     = "role"
)

// Auth returns a middleware that validates access tokens.
func Auth(tokens auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.Unauthorized(c, "token expired")
			} else {
				response.Unauthorized(c, "invalid token")
			}
			c.Abort()
			return
		}

		c.Set(UsernameKey, claims.Username())
		c.Set(RoleKey, claims.Role)

		c.Next()
	}
}

// GetUsername retrieves the authenticated username from the context.
// Returns empty string if not found.
func GetUsername(c *gin.Context) string {
	return c.GetString(UsernameKey)
}

// GetRole retrieves the role claim of the access token from the context.
func GetRole(c *gin.Context) string {
	return c.GetString(RoleKey)
}
