package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger logs every handled request with its status and duration.
// Handlers may stash an error under the "error" context key to have it
// included in the log record.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		requestID, _ := c.Get(RequestIDKey)

		if err, ok := c.Get("error"); ok {
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "request failed",
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", c.Writer.Status()),
				logger.Duration("duration", time.Since(start)),
				logger.Any(RequestIDKey, requestID),
				logger.Any("error", err),
			)
			return
		}

		log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request handled",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.Any(RequestIDKey, requestID),
		)
	}
}
