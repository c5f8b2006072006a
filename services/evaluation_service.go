package services

import (
	"sgac_app_go/dto"
	"sgac_app_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IndicatorsQuery is the base query of the indicator collection
func IndicatorsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.EvaluationIndicator{})
}

// ListIndicators returns indicators in insertion order
func ListIndicators(db *gorm.DB, p Pagination) ([]models.EvaluationIndicator, *PageInfo, error) {
	return FindPage[models.EvaluationIndicator](IndicatorsQuery(db), p)
}

// CreateIndicator validates req and inserts a new indicator
func CreateIndicator(db *gorm.DB, req *dto.IndicatorRequest) (*models.EvaluationIndicator, error) {
	if err := req.Validate(false).Err(); err != nil {
		return nil, err
	}
	var indicator models.EvaluationIndicator
	req.Apply(&indicator)
	if err := db.Create(&indicator).Error; err != nil {
		return nil, translate(err)
	}
	return &indicator, nil
}

// UpdateIndicator applies req to indicator
func UpdateIndicator(db *gorm.DB, indicator *models.EvaluationIndicator, req *dto.IndicatorRequest, partial bool) error {
	if err := req.Validate(partial).Err(); err != nil {
		return err
	}
	req.Apply(indicator)
	return translate(db.Save(indicator).Error)
}

// DeleteIndicator removes an indicator and the evaluations graded on it
func DeleteIndicator(db *gorm.DB, indicator *models.EvaluationIndicator) error {
	return translate(db.Delete(&models.EvaluationIndicator{}, indicator.ID).Error)
}

// EvaluationsQuery scopes evaluations to one professor
func EvaluationsQuery(db *gorm.DB, professorID uint) *gorm.DB {
	return db.Model(&models.Evaluation{}).Where("professor_id = ?", professorID)
}

var EvaluationPreloads = []string{"Professor", "Indicator"}

// ListEvaluations returns the evaluations of a professor
func ListEvaluations(db *gorm.DB, professorID uint, p Pagination) ([]models.Evaluation, *PageInfo, error) {
	return FindPage[models.Evaluation](EvaluationsQuery(db, professorID), p, EvaluationPreloads...)
}

func validateEvaluation(db *gorm.DB, req *dto.EvaluationRequest, partial bool) error {
	errs := req.Validate(partial)
	if err := checkReference(db, errs, "indicatorId", &models.EvaluationIndicator{}, req.IndicatorID); err != nil {
		return err
	}
	return errs.Err()
}

func reloadIndicator(db *gorm.DB, evaluation *models.Evaluation) error {
	if evaluation.Indicator.ID == evaluation.IndicatorID {
		return nil
	}
	evaluation.Indicator = models.EvaluationIndicator{}
	return translate(db.First(&evaluation.Indicator, evaluation.IndicatorID).Error)
}

// CreateEvaluation grades professor on an indicator. The professor comes from the caller.
func CreateEvaluation(db *gorm.DB, professor *models.Professor, req *dto.EvaluationRequest) (*models.Evaluation, error) {
	if err := validateEvaluation(db, req, false); err != nil {
		return nil, err
	}

	evaluation := models.Evaluation{ProfessorID: professor.ID}
	req.Apply(&evaluation)
	if err := db.Omit(clause.Associations).Create(&evaluation).Error; err != nil {
		return nil, translate(err)
	}
	evaluation.Professor = *professor
	if err := reloadIndicator(db, &evaluation); err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// UpdateEvaluation applies req to evaluation
func UpdateEvaluation(db *gorm.DB, evaluation *models.Evaluation, req *dto.EvaluationRequest, partial bool) error {
	if err := validateEvaluation(db, req, partial); err != nil {
		return err
	}
	req.Apply(evaluation)
	if err := db.Omit(clause.Associations).Save(evaluation).Error; err != nil {
		return translate(err)
	}
	return reloadIndicator(db, evaluation)
}

// DeleteEvaluation removes an evaluation
func DeleteEvaluation(db *gorm.DB, evaluation *models.Evaluation) error {
	return translate(db.Delete(&models.Evaluation{}, evaluation.ID).Error)
}
