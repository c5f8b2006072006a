package models

import "time"

// Evaluation grades
const (
	GradeExcellent = "EXCELENTE"
	GradeGood      = "BIEN"
	GradeRegular   = "REGULAR"
	GradeBad       = "MAL"
)

var Grades = []string{GradeExcellent, GradeGood, GradeRegular, GradeBad}

// Evaluation grades one professor on one indicator at a given date
type Evaluation struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ProfessorID uint                `gorm:"not null;index"`
	Professor   Professor           `gorm:"foreignKey:ProfessorID;constraint:OnDelete:CASCADE"`
	IndicatorID uint                `gorm:"not null;index"`
	Indicator   EvaluationIndicator `gorm:"foreignKey:IndicatorID;constraint:OnDelete:CASCADE"`

	Date  string `gorm:"size:10;not null"`
	Grade string `gorm:"size:255;not null"`
}

// TableName specifies the table name for Evaluation model
func (Evaluation) TableName() string {
	return "evaluations"
}
