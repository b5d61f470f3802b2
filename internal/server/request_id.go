package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"facemetry/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware honors an incoming X-Request-ID header, generates an
// id otherwise, and echoes it on the response.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)

		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(log.RequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}
