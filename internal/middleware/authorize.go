package middleware

import (
	"log"

	"movieflix/internal/authz"
	"movieflix/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequirePermission returns a middleware that allows the request only when
// the authenticated user's stored role permits action. It must run after Auth.
func RequirePermission(authorizer authz.Authorizer, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := GetUsername(c)
		if username == "" {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := authorizer.CanPerform(c.Request.Context(), username, action)
		if err != nil {
			log.Printf("Authorization check failed for %s (%s): %v", username, action, err)
			response.InternalError(c)
			c.Abort()
			return
		}

		if !allowed {
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
