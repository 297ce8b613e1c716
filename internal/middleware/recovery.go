package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/tendolkarurja/IPD/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 and keeps the server alive.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			ctx := c.Request.Context()
			log.LogAttrs(ctx, logger.ErrorLevel, "panic recovered",
				logger.String("request_id", logger.GetRequestID(ctx)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)
			c.Set("error", "panic")
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.ErrorResponse{Error: "internal server error"},
			)
		}()

		c.Next()
	}
}
