package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"community_site/internal/models"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrRegistrationClosed = errors.New("registration is closed for this event")
)

// Store persists a participation together with its guest rows. Create must
// write all rows or none.
type Store interface {
	FindEvent(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, p *models.Participation, guests []models.ParticipationGuest) error
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Register validates that the event is upcoming and open, then stores the
// aggregate record and one guest row per person.
func (s *Service) Register(ctx context.Context, req Request) (*models.Participation, error) {
	ev, err := s.store.FindEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !ev.RegistrationOpen || ev.StartsAt.Before(s.now()) {
		return nil, ErrRegistrationClosed
	}

	counts := Aggregate(req.Registrant, req.AdditionalGuests)
	p := &models.Participation{
		EventID:         ev.ID,
		RegistrantName:  strings.TrimSpace(req.Registrant.Name),
		RegistrantEmail: strings.ToLower(strings.TrimSpace(req.Registrant.Email)),
		People:          counts.People,
		Adults:          counts.Adults,
		Teens:           counts.Teens,
		Kids:            counts.Kids,
		Males:           counts.Males,
		Females:         counts.Females,
	}

	if err := s.store.Create(ctx, p, Guests(req)); err != nil {
		return nil, fmt.Errorf("create participation: %w", err)
	}
	return p, nil
}

// Guests lists the registrant followed by every additional guest as guest
// rows, without the participation link.
func Guests(req Request) []models.ParticipationGuest {
	out := make([]models.ParticipationGuest, 0, len(req.AdditionalGuests)+1)
	out = append(out, models.ParticipationGuest{
		ClientRef:    "registrant",
		Name:         strings.TrimSpace(req.Registrant.Name),
		AgeBand:      req.Registrant.Age,
		Sex:          req.Registrant.Sex,
		IsRegistrant: true,
	})
	for _, g := range req.AdditionalGuests {
		out = append(out, models.ParticipationGuest{
			ClientRef: g.ID,
			Name:      strings.TrimSpace(g.Name),
			AgeBand:   g.Age,
			Sex:       g.Sex,
		})
	}
	return out
}
