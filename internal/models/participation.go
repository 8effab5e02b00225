package models

import "time"

type AgeBand string

const (
	AgeKid   AgeBand = "1-12"
	AgeTeen  AgeBand = "13-17"
	AgeAdult AgeBand = "18+"
)

type Sex string

const (
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
	SexUnspecified Sex = ""
)

// Participation aggregates one registration for an event. Counters that
// would be zero are stored as NULL.
type Participation struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	EventID         int64     `gorm:"index;not null" json:"event_id"`
	RegistrantName  string    `gorm:"size:200;not null" json:"registrant_name"`
	RegistrantEmail string    `gorm:"size:255;not null" json:"registrant_email"`
	People          int       `gorm:"not null" json:"people"`
	Adults          *int      `json:"adult"`
	Teens           *int      `json:"teens"`
	Kids            *int      `json:"kids"`
	Males           *int      `json:"males"`
	Females         *int      `json:"females"`
	CreatedAt       time.Time `json:"created_at"`

	Event  *Event               `gorm:"foreignKey:EventID" json:"-"`
	Guests []ParticipationGuest `gorm:"foreignKey:ParticipationID" json:"guests,omitempty"`
}

// ParticipationGuest is one person within a participation, the registrant
// included.
type ParticipationGuest struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	ParticipationID int64     `gorm:"index;not null" json:"participation_id"`
	ClientRef       string    `gorm:"size:64" json:"client_ref,omitempty"`
	Name            string    `gorm:"size:200;not null" json:"name"`
	AgeBand         AgeBand   `gorm:"size:8;not null" json:"age"`
	Sex             Sex       `gorm:"size:8" json:"sex"`
	IsRegistrant    bool      `gorm:"default:false" json:"is_registrant"`
	CreatedAt       time.Time `json:"created_at"`
}
