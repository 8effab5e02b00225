package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"community_site/internal/models"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Record(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns up to limit entries older than afterID (0 for the newest),
// filtered by a free-text search, and the cursor for the next page.
func (r *AuditRepository) List(ctx context.Context, afterID int64, search string, limit int) ([]models.AuditLog, *int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLog{}).Order("id DESC")
	if afterID > 0 {
		query = query.Where("id < ?", afterID)
	}
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		query = query.Where("(initiator_name LIKE ? OR action LIKE ? OR resource_type LIKE ? OR ip LIKE ?)",
			like, like, like, like)
	}

	var logs []models.AuditLog
	if err := query.Limit(limit + 1).Find(&logs).Error; err != nil {
		return nil, nil, err
	}

	var next *int64
	if len(logs) > limit {
		logs = logs[:limit]
		cursor := logs[limit-1].ID
		next = &cursor
	}
	return logs, next, nil
}
