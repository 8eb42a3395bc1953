package middleware

import (
	"time"

	"binance-relay/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// AccessLog emits one structured log line per request after the handler
// chain completes.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime).Milliseconds()
		status := c.Writer.Status()

		fields := []logx.LogField{
			logx.Field("method", c.Request.Method),
			logx.Field("path", c.Request.URL.Path),
			logx.Field("status", status),
			logx.Field("duration_ms", duration),
			logx.Field("client_ip", c.ClientIP()),
			logx.Field("bytes", c.Writer.Size()),
			logx.Field("request_id", c.GetString(ContextRequestID)),
		}

		if status >= 500 {
			logger.Errorw("request completed", fields...)
		} else {
			logger.Infow("request completed", fields...)
		}
	}
}
