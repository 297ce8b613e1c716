package middleware

import (
	"time"

	"github.com/tendolkarurja/IPD/internal/metrics"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates the caller's request id, or generates one, into the
// request context so every log line of the request carries it.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = logger.GenerateRequestID()
		}

		ctx := logger.SetRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		metrics.HTTPRequest(c.Request.Method, route, status, start)
		log.LogRequest(c.Request.Context(), c.Request.Method, c.Request.URL.Path, status, time.Since(start))

		if errMsg, ok := c.Get("error"); ok && status >= 500 {
			log.Ctx(c.Request.Context()).Error("request failed",
				"path", c.Request.URL.Path,
				"error", errMsg,
			)
		}
	}
}
