package models

import "time"

// Discipline groups subjects of a career. Deleted together with its career.
type Discipline struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	CareerID uint   `gorm:"not null;index"`
	Career   Career `gorm:"foreignKey:CareerID;constraint:OnDelete:CASCADE"`

	Code string `gorm:"size:255;not null"`
	Name string `gorm:"size:255;not null"`
}

// TableName specifies the table name for Discipline model
func (Discipline) TableName() string {
	return "disciplines"
}
