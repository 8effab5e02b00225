// Package registration turns an event registration form into a participation
// record with per-band head counts and one guest row per person.
package registration

import "community_site/internal/models"

const MaxGuests = 20

// Registrant is the person filling in the form.
type Registrant struct {
	Name  string         `json:"name" binding:"required,max=200"`
	Email string         `json:"email" binding:"required,email,max=255"`
	Age   models.AgeBand `json:"age" binding:"required,oneof=1-12 13-17 18+"`
	Sex   models.Sex     `json:"sex" binding:"omitempty,oneof=male female"`
}

// Guest is an additional person brought by the registrant. ID is the
// client-side row identifier.
type Guest struct {
	ID   string         `json:"id" binding:"max=64"`
	Name string         `json:"name" binding:"required,max=200"`
	Age  models.AgeBand `json:"age" binding:"required,oneof=1-12 13-17 18+"`
	Sex  models.Sex     `json:"sex" binding:"omitempty,oneof=male female"`
}

type Request struct {
	EventID          int64      `json:"eventId" binding:"required,gt=0"`
	Registrant       Registrant `json:"registrant"`
	AdditionalGuests []Guest    `json:"additionalGuests" binding:"max=20,dive"`
}
