package models

import "time"

// Award classifications
const (
	AwardNationalACC             = "Premio Nacional de la ACC"
	AwardProvincialACC           = "Premio Provincial de la ACC"
	AwardNationalCITMA           = "Premio Nacional CITMA"
	AwardProvincialCITMA         = "Premio Provincial CITMA"
	AwardScientificEvents        = "Premios de Eventos Científicos"
	AwardInternationalScience    = "Premios Científicos Internacionales"
	AwardMinisterDistinction     = "Distinción del Ministro"
	AwardRector                  = "Premio del Rector"
	AwardDean                    = "Premio del decano"
	AwardNationalDecoration      = "Condecoraciones Nacionales"
	AwardInternationalDecoration = "Condecoraciones Internacionales"
	AwardStudentRecognition      = "Reconocimientos de las organizaciones estudiantiles"
	AwardOtherScientific         = "Otros premios científicos"
	AwardOther                   = "Otros"
)

var AwardClassifications = []string{
	AwardNationalACC,
	AwardProvincialACC,
	AwardNationalCITMA,
	AwardProvincialCITMA,
	AwardScientificEvents,
	AwardInternationalScience,
	AwardMinisterDistinction,
	AwardRector,
	AwardDean,
	AwardNationalDecoration,
	AwardInternationalDecoration,
	AwardStudentRecognition,
	AwardOtherScientific,
	AwardOther,
}

// Award is a distinction granted to a professor
type Award struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ProfessorID uint      `gorm:"not null;index"`
	Professor   Professor `gorm:"foreignKey:ProfessorID;constraint:OnDelete:CASCADE"`

	Year           int    `gorm:"not null"`
	Description    string `gorm:"type:text;not null"`
	Classification string `gorm:"size:255;not null"`
}

// TableName specifies the table name for Award model
func (Award) TableName() string {
	return "awards"
}
