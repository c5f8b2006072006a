package handlers

import (
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

// subjectFromPath resolves career, discipline and subject, each scoped to its parent
func subjectFromPath(c echo.Context) (*models.Subject, error) {
	discipline, err := disciplineFromPath(c)
	if err != nil {
		return nil, err
	}
	subject, err := lookupOne[models.Subject](c, services.SubjectsQuery(db.DB, discipline.ID), services.SubjectLookup)
	if err != nil {
		return nil, err
	}
	subject.Discipline = *discipline
	return subject, nil
}

// subjectResponse loads the teaching professors of one subject
func subjectResponse(subject *models.Subject) (dto.SubjectResponse, error) {
	professors, err := services.SubjectProfessors(db.DB, []uint{subject.ID})
	if err != nil {
		return dto.SubjectResponse{}, err
	}
	return dto.NewSubjectResponse(subject, professors[subject.ID]), nil
}

// ListSubjectsHandler handles GET /careers/:careerId/disciplines/:disciplineId/subjects
func ListSubjectsHandler(c echo.Context) error {
	discipline, err := disciplineFromPath(c)
	if err != nil {
		return err
	}
	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}

	subjects, info, err := services.ListSubjects(db.DB, discipline.ID, p)
	if err != nil {
		return err
	}

	ids := make([]uint, 0, len(subjects))
	for _, s := range subjects {
		ids = append(ids, s.ID)
	}
	professors, err := services.SubjectProfessors(db.DB, ids)
	if err != nil {
		return err
	}

	out := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		out = append(out, dto.NewSubjectResponse(&subjects[i], professors[subjects[i].ID]))
	}
	return respondList(c, out, info, p)
}

// CreateSubjectHandler handles POST /careers/:careerId/disciplines/:disciplineId/subjects
func CreateSubjectHandler(c echo.Context) error {
	discipline, err := disciplineFromPath(c)
	if err != nil {
		return err
	}

	var req dto.SubjectRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	subject, err := services.CreateSubject(db.DB, discipline, &req)
	if err != nil {
		return err
	}

	resp, err := subjectResponse(subject)
	if err != nil {
		return err
	}
	recordChange(c, models.AuditActionCreate, resourceSubject, subject.ID, nil, resp)
	return c.JSON(http.StatusCreated, resp)
}

// GetSubjectHandler handles GET /careers/:careerId/disciplines/:disciplineId/subjects/:subjectId
func GetSubjectHandler(c echo.Context) error {
	subject, err := subjectFromPath(c)
	if err != nil {
		return err
	}
	resp, err := subjectResponse(subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateSubjectHandler handles PUT and PATCH on a subject
func UpdateSubjectHandler(c echo.Context) error {
	subject, err := subjectFromPath(c)
	if err != nil {
		return err
	}

	var req dto.SubjectRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	old, err := subjectResponse(subject)
	if err != nil {
		return err
	}
	if err := services.UpdateSubject(db.DB, subject, &req, isPartial(c)); err != nil {
		return err
	}

	resp, err := subjectResponse(subject)
	if err != nil {
		return err
	}
	recordChange(c, models.AuditActionUpdate, resourceSubject, subject.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DeleteSubjectHandler handles DELETE on a subject
func DeleteSubjectHandler(c echo.Context) error {
	subject, err := subjectFromPath(c)
	if err != nil {
		return err
	}

	old, err := subjectResponse(subject)
	if err != nil {
		return err
	}
	if err := services.DeleteSubject(db.DB, subject); err != nil {
		return err
	}

	recordChange(c, models.AuditActionDelete, resourceSubject, subject.ID, old, nil)
	return c.NoContent(http.StatusNoContent)
}
