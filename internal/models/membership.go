package models

import "time"

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
	MembershipDeclined MembershipStatus = "declined"
)

// Membership is one stored application. Several rows may share an email
// (re-applications, corrections), so email is indexed but not unique.
type Membership struct {
	ID          int64            `gorm:"primaryKey" json:"id"`
	FirstName   string           `gorm:"size:100" json:"first_name"`
	LastName    string           `gorm:"size:100" json:"last_name"`
	Email       string           `gorm:"index;size:255;not null" json:"email"`
	Phone       string           `gorm:"size:50" json:"phone,omitempty"`
	Address     string           `gorm:"size:255" json:"address,omitempty"`
	City        string           `gorm:"size:100" json:"city,omitempty"`
	PostalCode  string           `gorm:"size:20" json:"postal_code,omitempty"`
	Occupation  string           `gorm:"size:100" json:"occupation,omitempty"`
	HowHeard    string           `gorm:"size:255" json:"how_heard,omitempty"`
	Newsletter  bool             `gorm:"default:false" json:"newsletter"`
	Status      MembershipStatus `gorm:"size:32;index;default:pending" json:"status"`
	Notes       string           `gorm:"type:text" json:"notes,omitempty"`
	ReviewedAt  *time.Time       `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
