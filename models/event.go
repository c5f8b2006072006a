package models

import "time"

// Event classifications
const (
	EventClassificationInternational = "INTERNACIONAL"
	EventClassificationNational      = "NACIONAL"
	EventClassificationProvincial    = "PROVINCIAL"
	EventClassificationMunicipal     = "MUNICIPAL"
	EventClassificationBase          = "DE_BASE"
)

var EventClassifications = []string{
	EventClassificationInternational,
	EventClassificationNational,
	EventClassificationProvincial,
	EventClassificationMunicipal,
	EventClassificationBase,
}

// Event is a scientific event a professor took part in
type Event struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Year           int    `gorm:"not null"`
	Title          string `gorm:"size:500;not null"`
	ShortTitle     string `gorm:"size:255;not null"`
	Classification string `gorm:"size:255;not null"`
}

// TableName specifies the table name for Event model
func (Event) TableName() string {
	return "events"
}
