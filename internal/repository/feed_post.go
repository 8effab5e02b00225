package repository

import (
	"context"

	"gorm.io/gorm"

	"community_site/internal/feed"
	"community_site/internal/models"
)

type FeedPostRepository struct {
	db *gorm.DB
}

func NewFeedPostRepository(db *gorm.DB) *FeedPostRepository {
	return &FeedPostRepository{db: db}
}

func (r *FeedPostRepository) List(ctx context.Context, p feed.Page) (feed.Result[models.FeedPost], error) {
	return feed.Fetch[models.FeedPost](ctx, r.db.Model(&models.FeedPost{}), p, "created_at DESC, id DESC")
}
