package handlers

import (
	"net/http"
	"strings"

	"sgac_app_go/db"
	"sgac_app_go/dto"
	"sgac_app_go/middleware"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

// ListAuditLogsHandler handles GET /audit-logs.
// Entries carry client addresses, so staff credentials are needed whenever auth is required.
func ListAuditLogsHandler(c echo.Context) error {
	if getConfig(c).AuthRequired {
		user := middleware.GetCurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, middleware.MsgNotAuthenticated)
		}
		if !user.IsStaff {
			return echo.NewHTTPError(http.StatusForbidden, middleware.MsgPermissionDenied)
		}
	}

	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}

	filters := services.AuditLogFilters{
		ResourceType: c.QueryParam("resourceType"),
		ResourceID:   c.QueryParam("resourceId"),
		Action:       strings.ToUpper(c.QueryParam("action")),
	}
	logs, info, err := services.ListAuditLogs(db.DB, filters, p)
	if err != nil {
		return err
	}

	out := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, dto.NewAuditLogResponse(&logs[i]))
	}
	return respondList(c, out, info, p)
}
