package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"fantera.backend/pkg/utils"
)

const RequestIDKey = "request_id"

// RequestIDMiddleware assigns each request an id, honoring an incoming
// X-Request-ID header, and echoes it on the response. The id lands in both
// the gin context and the request context so logger.WithContext finds it.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = utils.NewID().String()
		}

		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)

		ctx := context.WithValue(c.Request.Context(), "request_id", id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
