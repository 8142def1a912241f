package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID attaches an identifier to every request, reusing the
// client-supplied X-Request-ID header when present.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}
