package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in requests and responses.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the context key of the request id.
const RequestIDKey = "requestID"

// RequestID returns a middleware that tags every request with an id. A
// client supplied X-Request-ID is kept.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID retrieves the request id from the context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
