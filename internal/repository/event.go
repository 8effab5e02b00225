package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"community_site/internal/feed"
	"community_site/internal/models"
	"community_site/internal/registration"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Upcoming pages through events starting at or after now, soonest first.
func (r *EventRepository) Upcoming(ctx context.Context, now time.Time, p feed.Page) (feed.Result[models.Event], error) {
	q := r.db.Model(&models.Event{}).Where("starts_at >= ?", now.UTC())
	return feed.Fetch[models.Event](ctx, q, p, "starts_at ASC, id ASC")
}

func (r *EventRepository) BySlug(ctx context.Context, slug string) (*models.Event, error) {
	var ev models.Event
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ev, nil
}

// FindEvent satisfies registration.Store.
func (r *EventRepository) FindEvent(ctx context.Context, id int64) (*models.Event, error) {
	var ev models.Event
	if err := r.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, registration.ErrEventNotFound
		}
		return nil, err
	}
	return &ev, nil
}
