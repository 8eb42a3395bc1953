package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request correlation ID, echoed back to the
	// caller and attached to access log lines.
	HeaderRequestID = "X-Request-ID"

	// ContextRequestID is the gin context key holding the ID.
	ContextRequestID = "request_id"
)

// RequestID assigns each request an ID, reusing the caller's when supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
