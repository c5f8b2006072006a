package handlers

import (
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

func professorFromPath(c echo.Context) (*models.Professor, error) {
	return lookupOne[models.Professor](c, services.ProfessorsQuery(db.DB), services.ProfessorLookup)
}

// ListProfessorsHandler handles GET /professors
func ListProfessorsHandler(c echo.Context) error {
	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}
	professors, info, err := services.ListProfessors(db.DB, p)
	if err != nil {
		return err
	}

	out := make([]dto.ProfessorResponse, 0, len(professors))
	for i := range professors {
		out = append(out, dto.NewProfessorResponse(&professors[i]))
	}
	return respondList(c, out, info, p)
}

// CreateProfessorHandler handles POST /professors
func CreateProfessorHandler(c echo.Context) error {
	var req dto.ProfessorRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	professor, err := services.CreateProfessor(db.DB, &req)
	if err != nil {
		return err
	}

	resp := dto.NewProfessorResponse(professor)
	recordChange(c, models.AuditActionCreate, resourceProfessor, professor.ID, nil, resp)
	return c.JSON(http.StatusCreated, resp)
}

// GetProfessorHandler handles GET /professors/:professorId
func GetProfessorHandler(c echo.Context) error {
	professor, err := professorFromPath(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewProfessorResponse(professor))
}

// UpdateProfessorHandler handles PUT and PATCH /professors/:professorId
func UpdateProfessorHandler(c echo.Context) error {
	professor, err := professorFromPath(c)
	if err != nil {
		return err
	}

	var req dto.ProfessorRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	old := dto.NewProfessorResponse(professor)
	if err := services.UpdateProfessor(db.DB, professor, &req, isPartial(c)); err != nil {
		return err
	}

	resp := dto.NewProfessorResponse(professor)
	recordChange(c, models.AuditActionUpdate, resourceProfessor, professor.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DeleteProfessorHandler handles DELETE /professors/:professorId.
// Awards, evaluations and every link row of the professor are removed by the store.
func DeleteProfessorHandler(c echo.Context) error {
	professor, err := professorFromPath(c)
	if err != nil {
		return err
	}

	old := dto.NewProfessorResponse(professor)
	if err := services.DeleteProfessor(db.DB, professor); err != nil {
		return err
	}

	recordChange(c, models.AuditActionDelete, resourceProfessor, professor.ID, old, nil)
	return c.NoContent(http.StatusNoContent)
}
