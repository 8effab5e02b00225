package models

import (
	"time"

	"gorm.io/datatypes"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type GalleryItem struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"size:255" json:"title"`
	Caption   string         `gorm:"size:1000" json:"caption,omitempty"`
	MediaURL  string         `gorm:"size:500;not null" json:"media_url"`
	MediaType MediaType      `gorm:"size:16;default:image" json:"media_type"`
	Album     string         `gorm:"size:100;index" json:"album,omitempty"`
	Metadata  datatypes.JSON `gorm:"type:json" json:"metadata,omitempty"` // width, height, photographer
	TakenAt   *time.Time     `json:"taken_at,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}
