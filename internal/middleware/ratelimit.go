package middleware

import (
	"log"
	"strconv"
	"time"

	"movieflix/internal/cache"
	"movieflix/pkg/response"

	"github.com/gin-gonic/gin"
)

// KeyFunc extracts the subject a request is counted against.
type KeyFunc func(c *gin.Context) string

// ClientIP counts requests per client address.
func ClientIP(c *gin.Context) string {
	return c.ClientIP()
}

// ParamKey counts requests per value of a path parameter.
func ParamKey(name string) KeyFunc {
	return func(c *gin.Context) string {
		return c.Param(name)
	}
}

// RateLimitConfig configures a fixed window rate limit.
type RateLimitConfig struct {
	// Scope namespaces the counters of one limit.
	Scope string
	// Limit is the number of requests allowed per window. Zero disables the limit.
	Limit  int
	Window time.Duration
	Key    KeyFunc
}

// RateLimit returns a middleware that rejects requests with 429 once a
// subject exceeds the limit within the window. Counters live in c, so a
// no-op cache never limits. Cache failures let the request through.
func RateLimit(c cache.Cache, cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Key == nil {
		cfg.Key = ClientIP
	}

	return func(ctx *gin.Context) {
		if cfg.Limit <= 0 {
			ctx.Next()
			return
		}

		subject := cfg.Key(ctx)
		if subject == "" {
			ctx.Next()
			return
		}

		count, err := c.Incr(ctx.Request.Context(), cache.RateLimitKey(cfg.Scope, subject), cfg.Window)
		if err != nil {
			log.Printf("Rate limit check failed for %s: %v", cfg.Scope, err)
			ctx.Next()
			return
		}

		if count > int64(cfg.Limit) {
			ctx.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			ctx.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			response.TooManyRequests(ctx, "too many requests, please try again later")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
