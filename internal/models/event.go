package models

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	ID               int64          `gorm:"primaryKey" json:"id"`
	Title            string         `gorm:"size:255;not null" json:"title"`
	Slug             string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description      string         `gorm:"type:text" json:"description"`
	Location         string         `gorm:"size:255" json:"location"`
	ImageURL         string         `gorm:"size:500" json:"image_url,omitempty"`
	StartsAt         time.Time      `gorm:"index;not null" json:"starts_at"`
	EndsAt           *time.Time     `json:"ends_at,omitempty"`
	RegistrationOpen bool           `gorm:"default:true" json:"registration_open"`
	Details          datatypes.JSON `gorm:"type:json" json:"details,omitempty"` // schedule, what to bring
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
