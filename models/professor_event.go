package models

// ProfessorEvent links an event to its professor. EventID is unique: one professor per event.
type ProfessorEvent struct {
	ID uint `gorm:"primarykey"`

	EventID     uint      `gorm:"not null;uniqueIndex"`
	Event       Event     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	ProfessorID uint      `gorm:"not null;index"`
	Professor   Professor `gorm:"foreignKey:ProfessorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ProfessorEvent model
func (ProfessorEvent) TableName() string {
	return "professor_events"
}
