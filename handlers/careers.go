package handlers

import (
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

func careerResponses(careers []models.Career) []dto.CareerResponse {
	out := make([]dto.CareerResponse, 0, len(careers))
	for i := range careers {
		out = append(out, dto.NewCareerResponse(&careers[i]))
	}
	return out
}

// ListCareersHandler handles GET /careers
func ListCareersHandler(c echo.Context) error {
	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}
	careers, info, err := services.ListCareers(db.DB, p)
	if err != nil {
		return err
	}
	return respondList(c, careerResponses(careers), info, p)
}

// CreateCareerHandler handles POST /careers
func CreateCareerHandler(c echo.Context) error {
	var req dto.CareerRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	career, err := services.CreateCareer(db.DB, &req)
	if err != nil {
		return err
	}

	resp := dto.NewCareerResponse(career)
	recordChange(c, models.AuditActionCreate, resourceCareer, career.ID, nil, resp)
	return c.JSON(http.StatusCreated, resp)
}

// GetCareerHandler handles GET /careers/:careerId
func GetCareerHandler(c echo.Context) error {
	career, err := lookupOne[models.Career](c, services.CareersQuery(db.DB), services.CareerLookup)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewCareerResponse(career))
}

// UpdateCareerHandler handles PUT and PATCH /careers/:careerId
func UpdateCareerHandler(c echo.Context) error {
	career, err := lookupOne[models.Career](c, services.CareersQuery(db.DB), services.CareerLookup)
	if err != nil {
		return err
	}

	var req dto.CareerRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	old := dto.NewCareerResponse(career)
	if err := services.UpdateCareer(db.DB, career, &req, isPartial(c)); err != nil {
		return err
	}

	resp := dto.NewCareerResponse(career)
	recordChange(c, models.AuditActionUpdate, resourceCareer, career.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DeleteCareerHandler handles DELETE /careers/:careerId
func DeleteCareerHandler(c echo.Context) error {
	career, err := lookupOne[models.Career](c, services.CareersQuery(db.DB), services.CareerLookup)
	if err != nil {
		return err
	}

	old := dto.NewCareerResponse(career)
	if err := services.DeleteCareer(db.DB, career); err != nil {
		return err
	}

	recordChange(c, models.AuditActionDelete, resourceCareer, career.ID, old, nil)
	return c.NoContent(http.StatusNoContent)
}
