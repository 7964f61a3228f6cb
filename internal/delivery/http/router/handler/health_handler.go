package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
// GET /health
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ServiceInfo reports the service name and its operations.
// GET /
func ServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": "pulse",
		"endpoints": map[string]string{
			"generate": "POST /api/surveys/generate",
			"dispatch": "POST /api/notifications/dispatch",
		},
	})
}
