package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"finplanner/internal/errors"
)

// PanicRecovery is a middleware that recovers from panics and returns a standardized error response
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					log.Error().
						Str("trace_id", traceID).
						Str("panic", fmt.Sprintf("%v", r)).
						Str("stack_trace", string(debug.Stack())).
						Str("path", c.Request().URL.Path).
						Str("method", c.Request().Method).
						Msg("Panic recovered")

					errorResponse := errors.NewErrorResponse(
						errors.SystemInternalError,
						traceID,
					)

					if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
						log.Error().
							Str("trace_id", traceID).
							Err(err).
							Msg("Failed to send panic recovery response")
					}
				}
			}()

			return next(c)
		}
	}
}
