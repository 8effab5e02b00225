package models

import "time"

type AdminStatus string

const (
	AdminActive    AdminStatus = "active"
	AdminSuspended AdminStatus = "suspended"
)

// Admin is a site administrator who reviews membership applications.
type Admin struct {
	ID           int64       `gorm:"primaryKey" json:"id"`
	Email        string      `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string      `gorm:"size:200" json:"name"`
	PasswordHash string      `gorm:"size:255" json:"-"`
	Status       AdminStatus `gorm:"size:16;default:active" json:"status"`
	LastLoginAt  *time.Time  `json:"last_login_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
