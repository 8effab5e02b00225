package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"community_site/internal/feed"
	"community_site/internal/models"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) List(ctx context.Context, album string, p feed.Page) (feed.Result[models.GalleryItem], error) {
	q := r.db.Model(&models.GalleryItem{})
	if album != "" {
		q = q.Where("album = ?", album)
	}
	return feed.Fetch[models.GalleryItem](ctx, q, p, "created_at DESC, id DESC")
}

func (r *GalleryRepository) Get(ctx context.Context, id int64) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Albums returns the distinct album names in alphabetical order.
func (r *GalleryRepository) Albums(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&models.GalleryItem{}).
		Where("album <> ?", "").
		Distinct().
		Order("album ASC").
		Pluck("album", &out).Error
	return out, err
}
