package models

import "time"

// RevokedToken marks a refresh token id as no longer usable
type RevokedToken struct {
	JTI       string    `gorm:"primarykey;size:64"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for RevokedToken model
func (RevokedToken) TableName() string {
	return "revoked_tokens"
}

// IsExpired reports whether the underlying token has expired anyway
func (t *RevokedToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
