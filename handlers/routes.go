package handlers

import (
	"fmt"

	"sgac_app_go/config"
	"sgac_app_go/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// resource is the set of handlers behind one collection and its detail route
type resource struct {
	list, create, get, update, remove echo.HandlerFunc
}

func registerResource(e *echo.Echo, collection, detail string, r resource, mw ...echo.MiddlewareFunc) {
	e.GET(collection, r.list, mw...)
	e.POST(collection, r.create, mw...)
	e.GET(detail, r.get, mw...)
	e.PUT(detail, r.update, mw...)
	e.PATCH(detail, r.update, mw...)
	e.DELETE(detail, r.remove, mw...)
}

// RegisterRoutes mounts every API route on e
func RegisterRoutes(e *echo.Echo, cfg *config.Config) {
	e.GET("/healthz", HealthHandler)
	e.GET("/metrics", middleware.MetricsHandler())

	// Token endpoints
	e.POST("/auth/token", ObtainTokenHandler, middleware.TokenThrottle.Middleware())
	e.POST("/auth/token/refresh", RefreshTokenHandler)
	e.POST("/auth/token/blacklist", BlacklistTokenHandler)

	mw := []echo.MiddlewareFunc{middleware.RequireToken(cfg.AuthRequired), middleware.AuditContext()}

	e.GET("/audit-logs", ListAuditLogsHandler, mw...)

	registerResource(e, "/careers", "/careers/:careerId", resource{
		ListCareersHandler, CreateCareerHandler, GetCareerHandler, UpdateCareerHandler, DeleteCareerHandler,
	}, mw...)
	e.GET("/careers/:careerId/report", CareerReportHandler, mw...)

	registerResource(e, "/careers/:careerId/disciplines", "/careers/:careerId/disciplines/:disciplineId", resource{
		ListDisciplinesHandler, CreateDisciplineHandler, GetDisciplineHandler, UpdateDisciplineHandler, DeleteDisciplineHandler,
	}, mw...)

	registerResource(e,
		"/careers/:careerId/disciplines/:disciplineId/subjects",
		"/careers/:careerId/disciplines/:disciplineId/subjects/:subjectId",
		resource{ListSubjectsHandler, CreateSubjectHandler, GetSubjectHandler, UpdateSubjectHandler, DeleteSubjectHandler},
		mw...)

	e.GET("/professors/report", ProfessorsReportHandler, mw...)
	registerResource(e, "/professors", "/professors/:professorId", resource{
		ListProfessorsHandler, CreateProfessorHandler, GetProfessorHandler, UpdateProfessorHandler, DeleteProfessorHandler,
	}, mw...)

	registerResource(e, "/professors/:professorId/evaluations", "/professors/:professorId/evaluations/:evaluationId", resource{
		ListEvaluationsHandler, CreateEvaluationHandler, GetEvaluationHandler, UpdateEvaluationHandler, DeleteEvaluationHandler,
	}, mw...)

	// The collection answers both with and without the trailing slash
	publications := resource{
		ListPublicationsHandler, CreatePublicationHandler, GetPublicationHandler, UpdatePublicationHandler, DeletePublicationHandler,
	}
	registerResource(e, "/publications/", "/publications/:publicationId", publications, mw...)
	e.GET("/publications", publications.list, mw...)
	e.POST("/publications", publications.create, mw...)

	e.GET("/publications/:publicationId/evidence", DownloadEvidenceHandler, mw...)
	// Multipart framing gets one extra megabyte; the file itself is checked against MaxUploadMB
	uploadLimit := echomiddleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB+1))
	e.PUT("/publications/:publicationId/evidence", UploadEvidenceHandler, append([]echo.MiddlewareFunc{uploadLimit}, mw...)...)
	e.DELETE("/publications/:publicationId/evidence", DeleteEvidenceHandler, mw...)

	registerResource(e, "/publications/:publicationId/authors", "/publications/:publicationId/authors/:professorId", resource{
		ListAuthorsHandler, CreateAuthorHandler, GetAuthorHandler, UpdateAuthorHandler, DeleteAuthorHandler,
	}, mw...)

	registerResource(e, "/events", "/events/:eventId", resource{
		ListEventsHandler, CreateEventHandler, GetEventHandler, UpdateEventHandler, DeleteEventHandler,
	}, mw...)

	registerResource(e, "/awards", "/awards/:awardId", resource{
		ListAwardsHandler, CreateAwardHandler, GetAwardHandler, UpdateAwardHandler, DeleteAwardHandler,
	}, mw...)

	registerResource(e, "/evaluation-indicators", "/evaluation-indicators/:indicatorId", resource{
		ListIndicatorsHandler, CreateIndicatorHandler, GetIndicatorHandler, UpdateIndicatorHandler, DeleteIndicatorHandler,
	}, mw...)
}
