package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"community_site/internal/feed"
	"community_site/internal/models"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// FindByEmail returns every row whose email equals email ignoring case,
// oldest first.
func (r *MembershipRepository) FindByEmail(ctx context.Context, email string) ([]models.Membership, error) {
	var rows []models.Membership
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MembershipRepository) Create(ctx context.Context, m *models.Membership) error {
	if m.Status == "" {
		m.Status = models.MembershipPending
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MembershipRepository) Get(ctx context.Context, id int64) (*models.Membership, error) {
	var m models.Membership
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List pages through applications, newest first, optionally by status.
func (r *MembershipRepository) List(ctx context.Context, status string, p feed.Page) (feed.Result[models.Membership], error) {
	q := r.db.Model(&models.Membership{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return feed.Fetch[models.Membership](ctx, q, p, "created_at DESC, id DESC")
}

// SetStatus moves an application to status and stamps the review time.
func (r *MembershipRepository) SetStatus(ctx context.Context, id int64, status models.MembershipStatus, now time.Time) (*models.Membership, error) {
	res := r.db.WithContext(ctx).Model(&models.Membership{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"reviewed_at": now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update membership %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}
