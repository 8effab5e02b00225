package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"community_site/internal/models"
)

// ParticipationRepository writes registrations. It embeds the event lookups
// so it satisfies registration.Store on its own.
type ParticipationRepository struct {
	*EventRepository
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{EventRepository: NewEventRepository(db), db: db}
}

// Create inserts the participation and then its guest rows in one
// transaction, so a failed guest insert leaves no orphaned participation.
func (r *ParticipationRepository) Create(ctx context.Context, p *models.Participation, guests []models.ParticipationGuest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Guests").Create(p).Error; err != nil {
			return fmt.Errorf("insert participation: %w", err)
		}
		if len(guests) == 0 {
			return nil
		}
		for i := range guests {
			guests[i].ParticipationID = p.ID
		}
		if err := tx.Create(&guests).Error; err != nil {
			return fmt.Errorf("insert guests for participation %d: %w", p.ID, err)
		}
		p.Guests = guests
		return nil
	})
}

// ForEvent lists every participation for an event with its guests.
func (r *ParticipationRepository) ForEvent(ctx context.Context, eventID int64) ([]models.Participation, error) {
	var out []models.Participation
	err := r.db.WithContext(ctx).
		Preload("Guests", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// EventTotals sums head counts over an event's participations.
type EventTotals struct {
	Registrations int64 `json:"registrations"`
	People        int64 `json:"people"`
	Adults        int64 `json:"adult"`
	Teens         int64 `json:"teens"`
	Kids          int64 `json:"kids"`
}

func (r *ParticipationRepository) Totals(ctx context.Context, eventID int64) (EventTotals, error) {
	var t EventTotals
	err := r.db.WithContext(ctx).Model(&models.Participation{}).
		Select("COUNT(*) AS registrations, COALESCE(SUM(people),0) AS people, COALESCE(SUM(adults),0) AS adults, COALESCE(SUM(teens),0) AS teens, COALESCE(SUM(kids),0) AS kids").
		Where("event_id = ?", eventID).
		Scan(&t).Error
	return t, err
}
