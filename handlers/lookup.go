package handlers

import (
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/middleware"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// lookupOne resolves the row addressed by the path parameters in fields and
// runs the object permission check before handing it out.
func lookupOne[T any](c echo.Context, query *gorm.DB, fields []services.LookupField, preloads ...string) (*T, error) {
	obj, err := services.LookupOne[T](query, fields, c.Param, preloads...)
	if err != nil {
		return nil, err
	}
	if err := middleware.CheckObjectPermissions(c, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Resource names used by the audit trail and change events
const (
	resourceCareer      = "career"
	resourceDiscipline  = "discipline"
	resourceSubject     = "subject"
	resourceProfessor   = "professor"
	resourceEvaluation  = "evaluation"
	resourceIndicator   = "indicator"
	resourcePublication = "publication"
	resourceAuthor      = "author"
	resourceEvent       = "event"
	resourceAward       = "award"
)

// recordChange audits a successful write and publishes the change event
func recordChange(c echo.Context, action models.AuditAction, resource string, id uint, oldValues, newValues interface{}) {
	services.RecordChange(db.DB, middleware.GetAuditContext(c), action, resource, id, oldValues, newValues)
}

// isPartial reports whether the request is a PATCH
func isPartial(c echo.Context) bool {
	return c.Request().Method == http.MethodPatch
}
