package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"community_site/internal/feed"
	"community_site/internal/models"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func withTags(db *gorm.DB) *gorm.DB {
	return db.Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") })
}

// Published pages through published posts, newest first. A non-empty tag
// slug restricts the listing to posts carrying that tag.
func (r *PostRepository) Published(ctx context.Context, tag string, p feed.Page) (feed.Result[models.Post], error) {
	q := r.db.Model(&models.Post{}).Where("posts.published = ?", true)
	if tag != "" {
		tagged := r.db.Table("post_tags").
			Select("post_tags.post_id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.slug = ?", tag)
		q = q.Where("posts.id IN (?)", tagged)
	}
	res, err := feed.Fetch[models.Post](ctx, q, p, "posts.published_at DESC, posts.id DESC", withTags)
	if err != nil {
		return res, err
	}
	// listings carry the excerpt only
	for i := range res.Items {
		res.Items[i].Body = ""
	}
	return res, nil
}

func (r *PostRepository) BySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Scopes(withTags).
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

type TagCount struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	PostCount int64  `json:"post_count"`
}

// Tags lists every tag with the number of published posts carrying it.
func (r *PostRepository) Tags(ctx context.Context) ([]TagCount, error) {
	var out []TagCount
	err := r.db.WithContext(ctx).Model(&models.Tag{}).
		Select("tags.id, tags.name, tags.slug, COUNT(posts.id) AS post_count").
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Joins("LEFT JOIN posts ON posts.id = post_tags.post_id AND posts.published = ?", true).
		Group("tags.id, tags.name, tags.slug").
		Order("tags.name ASC").
		Scan(&out).Error
	return out, err
}
