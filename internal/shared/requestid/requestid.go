// Package requestid tags every request with a correlation ID.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request ID.
const HeaderName = "X-Request-ID"

// ContextKey is the gin context key the ID is stored under.
const ContextKey = "requestID"

// New returns a middleware that assigns a UUID to each request, honoring an
// incoming X-Request-ID from upstream proxies.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKey, id)
		c.Header(HeaderName, id)
		c.Next()
	}
}

// FromContext returns the request ID assigned by the middleware, if any.
func FromContext(c *gin.Context) string {
	return c.GetString(ContextKey)
}
