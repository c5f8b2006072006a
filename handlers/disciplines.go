package handlers

import (
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

// careerFromPath resolves the :careerId ancestor
func careerFromPath(c echo.Context) (*models.Career, error) {
	return lookupOne[models.Career](c, services.CareersQuery(db.DB), services.CareerLookup)
}

// disciplineFromPath resolves :careerId and then :disciplineId within that career
func disciplineFromPath(c echo.Context) (*models.Discipline, error) {
	career, err := careerFromPath(c)
	if err != nil {
		return nil, err
	}
	discipline, err := lookupOne[models.Discipline](c, services.DisciplinesQuery(db.DB, career.ID), services.DisciplineLookup)
	if err != nil {
		return nil, err
	}
	discipline.Career = *career
	return discipline, nil
}

// ListDisciplinesHandler handles GET /careers/:careerId/disciplines
func ListDisciplinesHandler(c echo.Context) error {
	career, err := careerFromPath(c)
	if err != nil {
		return err
	}
	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}

	disciplines, info, err := services.ListDisciplines(db.DB, career.ID, p)
	if err != nil {
		return err
	}

	out := make([]dto.DisciplineResponse, 0, len(disciplines))
	for i := range disciplines {
		out = append(out, dto.NewDisciplineResponse(&disciplines[i]))
	}
	return respondList(c, out, info, p)
}

// CreateDisciplineHandler handles POST /careers/:careerId/disciplines
func CreateDisciplineHandler(c echo.Context) error {
	career, err := careerFromPath(c)
	if err != nil {
		return err
	}

	var req dto.DisciplineRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	discipline, err := services.CreateDiscipline(db.DB, career, &req)
	if err != nil {
		return err
	}

	resp := dto.NewDisciplineResponse(discipline)
	recordChange(c, models.AuditActionCreate, resourceDiscipline, discipline.ID, nil, resp)
	return c.JSON(http.StatusCreated, resp)
}

// GetDisciplineHandler handles GET /careers/:careerId/disciplines/:disciplineId
func GetDisciplineHandler(c echo.Context) error {
	discipline, err := disciplineFromPath(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewDisciplineResponse(discipline))
}

// UpdateDisciplineHandler handles PUT and PATCH /careers/:careerId/disciplines/:disciplineId
func UpdateDisciplineHandler(c echo.Context) error {
	discipline, err := disciplineFromPath(c)
	if err != nil {
		return err
	}

	var req dto.DisciplineRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	old := dto.NewDisciplineResponse(discipline)
	if err := services.UpdateDiscipline(db.DB, discipline, &req, isPartial(c)); err != nil {
		return err
	}

	resp := dto.NewDisciplineResponse(discipline)
	recordChange(c, models.AuditActionUpdate, resourceDiscipline, discipline.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DeleteDisciplineHandler handles DELETE /careers/:careerId/disciplines/:disciplineId
func DeleteDisciplineHandler(c echo.Context) error {
	discipline, err := disciplineFromPath(c)
	if err != nil {
		return err
	}

	old := dto.NewDisciplineResponse(discipline)
	if err := services.DeleteDiscipline(db.DB, discipline); err != nil {
		return err
	}

	recordChange(c, models.AuditActionDelete, resourceDiscipline, discipline.ID, old, nil)
	return c.NoContent(http.StatusNoContent)
}
