package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DBPinger reports database liveness
type DBPinger interface {
	HealthCheck() error
}

// StatusHandler serves the liveness endpoint
type StatusHandler struct {
	db DBPinger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(db DBPinger) *StatusHandler {
	return &StatusHandler{db: db}
}

// Healthz reports process and database liveness
func (h *StatusHandler) Healthz(c echo.Context) error {
	status := http.StatusOK
	dbStatus := "up"

	if h.db != nil {
		if err := h.db.HealthCheck(); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}
	}

	return c.JSON(status, map[string]string{
		"status":   http.StatusText(status),
		"database": dbStatus,
	})
}
