package handlers

import (
	"net/http"

	"sgac_app_go/db"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HealthHandler handles GET /healthz
func HealthHandler(c echo.Context) error {
	if err := db.Ping(); err != nil {
		zap.L().Warn("health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
