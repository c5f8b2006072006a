package handlers

import (
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

func awardFromPath(c echo.Context) (*models.Award, error) {
	return lookupOne[models.Award](c, services.AwardsQuery(db.DB), services.AwardLookup, "Professor")
}

// ListAwardsHandler handles GET /awards
func ListAwardsHandler(c echo.Context) error {
	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}
	awards, info, err := services.ListAwards(db.DB, p)
	if err != nil {
		return err
	}

	out := make([]dto.AwardResponse, 0, len(awards))
	for i := range awards {
		out = append(out, dto.NewAwardResponse(&awards[i]))
	}
	return respondList(c, out, info, p)
}

// CreateAwardHandler handles POST /awards
func CreateAwardHandler(c echo.Context) error {
	var req dto.AwardRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	award, err := services.CreateAward(db.DB, &req)
	if err != nil {
		return err
	}

	resp := dto.NewAwardResponse(award)
	recordChange(c, models.AuditActionCreate, resourceAward, award.ID, nil, resp)
	return c.JSON(http.StatusCreated, resp)
}

// GetAwardHandler handles GET /awards/:awardId
func GetAwardHandler(c echo.Context) error {
	award, err := awardFromPath(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewAwardResponse(award))
}

// UpdateAwardHandler handles PUT and PATCH /awards/:awardId
func UpdateAwardHandler(c echo.Context) error {
	award, err := awardFromPath(c)
	if err != nil {
		return err
	}

	var req dto.AwardRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	old := dto.NewAwardResponse(award)
	if err := services.UpdateAward(db.DB, award, &req, isPartial(c)); err != nil {
		return err
	}

	resp := dto.NewAwardResponse(award)
	recordChange(c, models.AuditActionUpdate, resourceAward, award.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DeleteAwardHandler handles DELETE /awards/:awardId
func DeleteAwardHandler(c echo.Context) error {
	award, err := awardFromPath(c)
	if err != nil {
		return err
	}

	old := dto.NewAwardResponse(award)
	if err := services.DeleteAward(db.DB, award); err != nil {
		return err
	}

	recordChange(c, models.AuditActionDelete, resourceAward, award.ID, old, nil)
	return c.NoContent(http.StatusNoContent)
}
