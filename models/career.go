package models

import "time"

// Career modalities
const (
	CareerModalityDaytime   = "CURSO_DIURNO"
	CareerModalityDistance  = "CURSO_A_DISTANCIA"
	CareerModalityEncounter = "CURSO_POR_ENCUENTRO"
)

// CareerModalities lists the accepted values for Career.Modality
var CareerModalities = []string{CareerModalityDaytime, CareerModalityDistance, CareerModalityEncounter}

// Career is the academic program under accreditation
type Career struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name                     string `gorm:"size:255;not null"`
	Modality                 string `gorm:"size:255;not null"`
	Site                     string `gorm:"size:255;not null"`
	ExternalEvaluationYear   string `gorm:"size:255;not null"`
	EvaluatedCourse          string `gorm:"size:255;not null"`
	ExternalEvaluationNumber int    `gorm:"not null"`
}

// TableName specifies the table name for Career model
func (Career) TableName() string {
	return "careers"
}
