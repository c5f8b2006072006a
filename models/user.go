package models

import "time"

// User is an API account. Staff users may call mutating endpoints.
type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Username    string `gorm:"size:150;uniqueIndex;not null"`
	Email       string `gorm:"size:255"`
	Password    string `gorm:"not null"`
	IsStaff     bool   `gorm:"not null;default:false"`
	IsActive    bool   `gorm:"not null;default:true"`
	LastLoginAt *time.Time
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
