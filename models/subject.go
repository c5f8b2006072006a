package models

import "time"

// Subject modalities
const (
	SubjectModalityDaytime   = "DIURNO"
	SubjectModalityDistance  = "A_DISTANCIA"
	SubjectModalityEncounter = "POR_ENCUENTRO"
)

// Curriculum types
const (
	CurriculumBase     = "BASE"
	CurriculumOwn      = "PROPIO"
	CurriculumOptional = "OPTATIVA"
	CurriculumElective = "ELECTIVA"
)

var (
	SubjectModalities = []string{SubjectModalityDaytime, SubjectModalityDistance, SubjectModalityEncounter}
	CurriculumTypes   = []string{CurriculumBase, CurriculumOwn, CurriculumOptional, CurriculumElective}
)

// Academic year and term bounds
const (
	MinAcademicYear = 1
	MaxAcademicYear = 6
	MinTerm         = 1
	MaxTerm         = 2
)

// Subject is a course taught within a discipline
type Subject struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	DisciplineID uint       `gorm:"not null;index"`
	Discipline   Discipline `gorm:"foreignKey:DisciplineID;constraint:OnDelete:CASCADE"`

	Name       string `gorm:"size:255;not null"`
	Code       string `gorm:"size:100;not null"`
	Year       int    `gorm:"not null"`
	Term       int    `gorm:"not null"`
	Modality   string `gorm:"size:255;not null"`
	Curriculum string `gorm:"size:255;not null"`
}

// TableName specifies the table name for Subject model
func (Subject) TableName() string {
	return "subjects"
}
