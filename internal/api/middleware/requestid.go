package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/utils"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID ensures every request has an ID and logs the request once it
// completes. A well-formed incoming ID is kept; otherwise a uuid is issued.
// The ID is written back to the request header so handlers can reuse it as
// the tool call ID.
func RequestID(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if utils.ValidateToolID(reqID, "request_id", true) != nil {
			reqID = uuid.NewString()
		}
		c.Request.Header.Set(RequestIDHeader, reqID)
		c.Header(RequestIDHeader, reqID)

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Error(c.Errors.Last()))
		}
		logger.Debug("HTTP request", fields...)
	}
}
