package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"community_site/internal/models"
	"community_site/internal/registration"
)

const (
	MembershipForm        = "membership"
	EventRegistrationForm = "event-registration"
)

type PersonalStep struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
}

type AddressStep struct {
	Address    string `json:"address" binding:"required,max=255"`
	City       string `json:"city" binding:"required,max=100"`
	PostalCode string `json:"postalCode" binding:"required,max=20"`
}

type ConsentStep struct {
	Occupation  string `json:"occupation" binding:"omitempty,max=100"`
	HowHeard    string `json:"howHeard" binding:"omitempty,max=255"`
	Newsletter  bool   `json:"newsletter"`
	AcceptTerms bool   `json:"acceptTerms" binding:"required"`
}

// MembershipApplication is the full membership form as submitted on the
// last step.
type MembershipApplication struct {
	PersonalStep
	AddressStep
	ConsentStep
}

// Model maps the application onto a pending membership row.
func (a MembershipApplication) Model() *models.Membership {
	return &models.Membership{
		FirstName:  strings.TrimSpace(a.FirstName),
		LastName:   strings.TrimSpace(a.LastName),
		Email:      strings.ToLower(strings.TrimSpace(a.Email)),
		Phone:      strings.TrimSpace(a.Phone),
		Address:    strings.TrimSpace(a.Address),
		City:       strings.TrimSpace(a.City),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Occupation: strings.TrimSpace(a.Occupation),
		HowHeard:   strings.TrimSpace(a.HowHeard),
		Newsletter: a.Newsletter,
		Status:     models.MembershipPending,
	}
}

type RegistrantStep struct {
	Registrant registration.Registrant `json:"registrant"`
}

type GuestsStep struct {
	AdditionalGuests []registration.Guest `json:"additionalGuests" binding:"max=20,dive"`
}

type ReviewStep struct {
	EventID int64 `json:"eventId" binding:"required,gt=0"`
}

// Default registers the membership and event registration wizards.
func Default(v *validator.Validate) Registry {
	return Registry{
		MembershipForm: NewWizard(MembershipForm, v,
			Step{Name: "personal", New: func() any { return &PersonalStep{} }},
			Step{Name: "address", New: func() any { return &AddressStep{} }},
			Step{Name: "consent", New: func() any { return &ConsentStep{} }},
		),
		EventRegistrationForm: NewWizard(EventRegistrationForm, v,
			Step{Name: "registrant", New: func() any { return &RegistrantStep{} }},
			Step{Name: "guests", New: func() any { return &GuestsStep{} }},
			Step{Name: "review", New: func() any { return &ReviewStep{} }},
		),
	}
}
