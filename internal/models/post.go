package models

import "time"

// Post is a public blog/news article.
type Post struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Slug          string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Excerpt       string     `gorm:"size:500" json:"excerpt"`
	Body          string     `gorm:"type:text" json:"body,omitempty"`
	CoverImageURL string     `gorm:"size:500" json:"cover_image_url,omitempty"`
	Author        string     `gorm:"size:200" json:"author,omitempty"`
	Published     bool       `gorm:"index;default:false" json:"-"`
	PublishedAt   *time.Time `gorm:"index" json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Tags []Tag `gorm:"many2many:post_tags;" json:"tags"`
}

type Tag struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"-"`
}

// FeedPost belongs to the members-only feed.
type FeedPost struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	ImageURL  string    `gorm:"size:500" json:"image_url,omitempty"`
	Author    string    `gorm:"size:200" json:"author,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
