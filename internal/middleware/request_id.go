package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware tags every request with an id so API responses can be
// correlated with audit entries and server logs.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Writer.Header().Set(HeaderRequestID, id)
		c.Set(HeaderRequestID, id)

		c.Next()
	}
}
