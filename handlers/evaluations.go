package handlers

import (
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/dto"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

// evaluationFromPath resolves :professorId and then :evaluationId among that professor's evaluations.
// :evaluationId is the evaluation row id. A professor can hold several evaluations
// for the same indicator, so the (professor, indicator) pair does not address one row.
func evaluationFromPath(c echo.Context) (*models.Evaluation, error) {
	professor, err := professorFromPath(c)
	if err != nil {
		return nil, err
	}
	evaluation, err := lookupOne[models.Evaluation](c, services.EvaluationsQuery(db.DB, professor.ID), services.EvaluationLookup, "Indicator")
	if err != nil {
		return nil, err
	}
	evaluation.Professor = *professor
	return evaluation, nil
}

// ListEvaluationsHandler handles GET /professors/:professorId/evaluations
func ListEvaluationsHandler(c echo.Context) error {
	professor, err := professorFromPath(c)
	if err != nil {
		return err
	}
	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}

	evaluations, info, err := services.ListEvaluations(db.DB, professor.ID, p)
	if err != nil {
		return err
	}

	out := make([]dto.EvaluationResponse, 0, len(evaluations))
	for i := range evaluations {
		out = append(out, dto.NewEvaluationResponse(&evaluations[i]))
	}
	return respondList(c, out, info, p)
}

// CreateEvaluationHandler handles POST /professors/:professorId/evaluations
func CreateEvaluationHandler(c echo.Context) error {
	professor, err := professorFromPath(c)
	if err != nil {
		return err
	}

	var req dto.EvaluationRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	evaluation, err := services.CreateEvaluation(db.DB, professor, &req)
	if err != nil {
		return err
	}

	resp := dto.NewEvaluationResponse(evaluation)
	recordChange(c, models.AuditActionCreate, resourceEvaluation, evaluation.ID, nil, resp)
	return c.JSON(http.StatusCreated, resp)
}

// GetEvaluationHandler handles GET /professors/:professorId/evaluations/:evaluationId
func GetEvaluationHandler(c echo.Context) error {
	evaluation, err := evaluationFromPath(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewEvaluationResponse(evaluation))
}

// UpdateEvaluationHandler handles PUT and PATCH on an evaluation
func UpdateEvaluationHandler(c echo.Context) error {
	evaluation, err := evaluationFromPath(c)
	if err != nil {
		return err
	}

	var req dto.EvaluationRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	old := dto.NewEvaluationResponse(evaluation)
	if err := services.UpdateEvaluation(db.DB, evaluation, &req, isPartial(c)); err != nil {
		return err
	}

	resp := dto.NewEvaluationResponse(evaluation)
	recordChange(c, models.AuditActionUpdate, resourceEvaluation, evaluation.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DeleteEvaluationHandler handles DELETE on an evaluation
func DeleteEvaluationHandler(c echo.Context) error {
	evaluation, err := evaluationFromPath(c)
	if err != nil {
		return err
	}

	old := dto.NewEvaluationResponse(evaluation)
	if err := services.DeleteEvaluation(db.DB, evaluation); err != nil {
		return err
	}

	recordChange(c, models.AuditActionDelete, resourceEvaluation, evaluation.ID, old, nil)
	return c.NoContent(http.StatusNoContent)
}

func indicatorFromPath(c echo.Context) (*models.EvaluationIndicator, error) {
	return lookupOne[models.EvaluationIndicator](c, services.IndicatorsQuery(db.DB), services.IndicatorLookup)
}

// ListIndicatorsHandler handles GET /evaluation-indicators
func ListIndicatorsHandler(c echo.Context) error {
	p, err := paginationFromRequest(c)
	if err != nil {
		return err
	}
	indicators, info, err := services.ListIndicators(db.DB, p)
	if err != nil {
		return err
	}

	out := make([]dto.IndicatorResponse, 0, len(indicators))
	for i := range indicators {
		out = append(out, dto.NewIndicatorResponse(&indicators[i]))
	}
	return respondList(c, out, info, p)
}

// CreateIndicatorHandler handles POST /evaluation-indicators
func CreateIndicatorHandler(c echo.Context) error {
	var req dto.IndicatorRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	indicator, err := services.CreateIndicator(db.DB, &req)
	if err != nil {
		return err
	}

	resp := dto.NewIndicatorResponse(indicator)
	recordChange(c, models.AuditActionCreate, resourceIndicator, indicator.ID, nil, resp)
	return c.JSON(http.StatusCreated, resp)
}

// GetIndicatorHandler handles GET /evaluation-indicators/:indicatorId
func GetIndicatorHandler(c echo.Context) error {
	indicator, err := indicatorFromPath(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewIndicatorResponse(indicator))
}

// UpdateIndicatorHandler handles PUT and PATCH /evaluation-indicators/:indicatorId
func UpdateIndicatorHandler(c echo.Context) error {
	indicator, err := indicatorFromPath(c)
	if err != nil {
		return err
	}

	var req dto.IndicatorRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	old := dto.NewIndicatorResponse(indicator)
	if err := services.UpdateIndicator(db.DB, indicator, &req, isPartial(c)); err != nil {
		return err
	}

	resp := dto.NewIndicatorResponse(indicator)
	recordChange(c, models.AuditActionUpdate, resourceIndicator, indicator.ID, old, resp)
	return c.JSON(http.StatusOK, resp)
}

// DeleteIndicatorHandler handles DELETE /evaluation-indicators/:indicatorId.
// Evaluations graded on the indicator are removed with it.
func DeleteIndicatorHandler(c echo.Context) error {
	indicator, err := indicatorFromPath(c)
	if err != nil {
		return err
	}

	old := dto.NewIndicatorResponse(indicator)
	if err := services.DeleteIndicator(db.DB, indicator); err != nil {
		return err
	}

	recordChange(c, models.AuditActionDelete, resourceIndicator, indicator.ID, old, nil)
	return c.NoContent(http.StatusNoContent)
}
