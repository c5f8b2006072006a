package models

import "time"

// Evaluation dimensions
const (
	IndicatorTeachingWork        = "Trabajo docente-educativo en pregrado y posgrado"
	IndicatorPoliticalWork       = "Trabajo político-ideológico"
	IndicatorMethodologicalWork  = "Trabajo metodológico"
	IndicatorResearch            = "Trabajo de investigación e innovación"
	IndicatorContinuingEducation = "Superación"
	IndicatorExtension           = "Extensión Universitaria"
	IndicatorAdministrative      = "Funciones administrativas asignadas"
	IndicatorGeneral             = "General"
)

var IndicatorNames = []string{
	IndicatorTeachingWork,
	IndicatorPoliticalWork,
	IndicatorMethodologicalWork,
	IndicatorResearch,
	IndicatorContinuingEducation,
	IndicatorExtension,
	IndicatorAdministrative,
	IndicatorGeneral,
}

// EvaluationIndicator is a dimension professors are graded on
type EvaluationIndicator struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name string `gorm:"size:255;not null"`
}

// TableName specifies the table name for EvaluationIndicator model
func (EvaluationIndicator) TableName() string {
	return "evaluation_indicators"
}
