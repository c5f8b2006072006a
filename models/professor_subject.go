package models

// ProfessorSubject links a professor to a subject they teach
type ProfessorSubject struct {
	ID uint `gorm:"primarykey"`

	SubjectID   uint      `gorm:"not null;uniqueIndex:idx_professor_subject"`
	Subject     Subject   `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
	ProfessorID uint      `gorm:"not null;uniqueIndex:idx_professor_subject;index"`
	Professor   Professor `gorm:"foreignKey:ProfessorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ProfessorSubject model
func (ProfessorSubject) TableName() string {
	return "professor_subjects"
}
