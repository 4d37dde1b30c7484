package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	// TraceIDHeader carries the trace ID on both request and response
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the context key the trace ID is stored under
	TraceIDContextKey = "trace_id"
)

// RequestID assigns every request a trace ID. A client-supplied X-Trace-ID
// is reused so retries correlate across log lines; otherwise a fresh UUID
// is generated. The ID is stored on the context for handlers and logging,
// and echoed back on the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			} else {
				log.Debug().
					Str("trace_id", traceID).
					Str("path", c.Request().URL.Path).
					Msg("reusing client-supplied trace ID")
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

// GetTraceID returns the trace ID stored on the context, or an empty
// string when the middleware has not run for this request
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
