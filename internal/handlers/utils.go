package handlers

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

// defaultUserID partitions data when no user_id is supplied. There is no
// authentication layer; user_id is a plain partition column.
const defaultUserID = "default"

// userIDFromRequest resolves the user partition for a request, preferring
// an explicit query parameter and falling back to the shared default
func userIDFromRequest(c echo.Context) string {
	if userID := strings.TrimSpace(c.QueryParam("user_id")); userID != "" {
		return userID
	}
	return defaultUserID
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
