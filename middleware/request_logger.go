package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

type contextKeyLoggerType struct{}

var contextKeyLogger = &contextKeyLoggerType{}

const ginLoggerKey = "logger"

// RequestLogger assigns every request an id (reusing an incoming X-Request-ID),
// attaches a request-scoped logger and writes one access log line per request
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		rlog := log.With(zap.String("request_id", requestID))
		c.Set(ginLoggerKey, rlog)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), contextKeyLogger, rlog))

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			rlog.Error("request failed", fields...)
		case status >= 400:
			rlog.Warn("request rejected", fields...)
		default:
			rlog.Info("request handled", fields...)
		}
	}
}

// Logger returns the request-scoped logger, or a no-op logger outside a request
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(ginLoggerKey); ok {
		if rlog, ok := v.(*zap.Logger); ok {
			return rlog
		}
	}
	return FromContext(c.Request.Context())
}

// FromContext returns the logger stored in ctx by RequestLogger
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	if rlog, ok := ctx.Value(contextKeyLogger).(*zap.Logger); ok {
		return rlog
	}
	return zap.NewNop()
}
