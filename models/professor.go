package models

import "time"

// Teaching categories
const (
	TeachingCategoryInstructor = "INSTRUCTOR"
	TeachingCategoryAssistant  = "ASISTENTE"
	TeachingCategoryAuxiliary  = "AUXILIAR"
	TeachingCategoryFull       = "TITULAR"
	TeachingCategoryTrainee    = "AD"
	TeachingCategoryATD        = "ATD"
)

// Scientific degrees
const (
	ScientificDegreeDoctor = "DOCTOR"
	ScientificDegreeMaster = "MASTER"
	ScientificDegreeNone   = "NINGUNO"
)

var (
	TeachingCategories = []string{
		TeachingCategoryInstructor,
		TeachingCategoryAssistant,
		TeachingCategoryAuxiliary,
		TeachingCategoryFull,
		TeachingCategoryTrainee,
		TeachingCategoryATD,
	}
	ScientificDegrees = []string{ScientificDegreeDoctor, ScientificDegreeMaster, ScientificDegreeNone}
)

// EmailContact is one labeled e-mail address of a professor
type EmailContact struct {
	Label string `json:"label"`
	Email string `json:"email"`
}

// PhoneContact is one labeled phone number of a professor
type PhoneContact struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}

// Professor is a member of the teaching staff.
// Deleting a professor cascades to its subject/event/publication links, awards and evaluations.
type Professor struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name                   string `gorm:"size:255;not null"`
	FirstSurname           string `gorm:"size:255;not null"`
	SecondSurname          string `gorm:"size:255;not null"`
	CareerYearsExperience  int    `gorm:"not null;default:0"`
	MonthsExperience       int    `gorm:"not null;default:0"`
	TeachingCategory       string `gorm:"size:255;not null"`
	ScientificDegree       string `gorm:"size:255;not null"`
	RelatedSpecialtyDoctor *bool

	// Stored as JSON documents
	Emails []EmailContact `gorm:"serializer:json;type:text"`
	Phones []PhoneContact `gorm:"serializer:json;type:text"`
}

// TableName specifies the table name for Professor model
func (Professor) TableName() string {
	return "professors"
}

// FullName returns name and both surnames
func (p *Professor) FullName() string {
	name := p.Name + " " + p.FirstSurname
	if p.SecondSurname != "" {
		name += " " + p.SecondSurname
	}
	return name
}
