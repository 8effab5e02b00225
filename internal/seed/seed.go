package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"community_site/internal/auth"
	"community_site/internal/models"
)

// Options control what FirstSetup writes. Sample adds demo content.
type Options struct {
	AdminEmail    string
	AdminPassword string
	Sample        bool
	Now           time.Time
}

// FirstSetup ensures the initial administrator exists and, when asked, the
// demo content. Every write is keyed on a natural key so it can run again
// safely.
func FirstSetup(ctx context.Context, db *gorm.DB, opts Options) error {
	if opts.AdminEmail == "" {
		opts.AdminEmail = "admin@example.com"
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = "admin123" // change after first login
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	db = db.WithContext(ctx)

	// -------------------------
	// 1) Ensure admin
	// -------------------------
	hash, err := auth.HashPassword(opts.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.Admin{
		Email:        strings.ToLower(opts.AdminEmail),
		Name:         "Site Administrator",
		Status:       models.AdminActive,
		PasswordHash: hash,
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if !opts.Sample {
		slog.Info("seed ok", slog.String("admin", admin.Email))
		return nil
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return sample(tx, opts.Now)
	}); err != nil {
		return fmt.Errorf("seed sample content: %w", err)
	}

	slog.Info("seed ok", slog.String("admin", admin.Email), slog.Bool("sample", true))
	return nil
}

func sample(tx *gorm.DB, now time.Time) error {
	// -------------------------
	// 2) Tags and posts
	// -------------------------
	tags := map[string]*models.Tag{}
	for _, t := range []models.Tag{
		{Name: "News", Slug: "news"},
		{Name: "Culture", Slug: "culture"},
		{Name: "Youth", Slug: "youth"},
	} {
		tag := t
		if err := tx.Where("slug = ?", tag.Slug).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
		tags[tag.Slug] = &tag
	}

	posts := []struct {
		post models.Post
		tags []string
	}{
		{models.Post{Title: "Welcome to our new website", Slug: "welcome", Excerpt: "Everything about the association in one place.", Body: "We are happy to launch our new website."}, []string{"news"}},
		{models.Post{Title: "Folk dance workshop recap", Slug: "folk-dance-recap", Excerpt: "Over forty dancers joined us.", Body: "Thank you to everyone who came."}, []string{"culture"}},
		{models.Post{Title: "Summer camp registrations", Slug: "summer-camp", Excerpt: "Places are limited.", Body: "The youth summer camp returns in July."}, []string{"news", "youth"}},
	}
	for i, p := range posts {
		post := p.post
		at := now.Add(-time.Duration(len(posts)-i) * 24 * time.Hour)
		post.Published = true
		post.PublishedAt = &at
		if err := tx.Where("slug = ?", post.Slug).FirstOrCreate(&post).Error; err != nil {
			return err
		}
		var assoc []models.Tag
		for _, slug := range p.tags {
			assoc = append(assoc, *tags[slug])
		}
		if err := tx.Model(&post).Association("Tags").Replace(assoc); err != nil {
			return err
		}
	}

	// -------------------------
	// 3) Events
	// -------------------------
	for i, ev := range []models.Event{
		{Title: "Spring picnic", Slug: "spring-picnic", Location: "City park", Details: datatypes.JSON(`{"bring":["blanket","salad"]}`)},
		{Title: "Annual general assembly", Slug: "general-assembly", Location: "Community hall"},
		{Title: "Autumn festival", Slug: "autumn-festival", Location: "Main square"},
	} {
		event := ev
		event.StartsAt = now.Add(time.Duration(i+1) * 14 * 24 * time.Hour).UTC()
		event.RegistrationOpen = true
		if err := tx.Where("slug = ?", event.Slug).FirstOrCreate(&event).Error; err != nil {
			return err
		}
	}

	// -------------------------
	// 4) Gallery and member feed
	// -------------------------
	for _, item := range []models.GalleryItem{
		{Title: "Picnic group photo", MediaURL: "https://cdn.example.org/gallery/picnic-1.jpg", Album: "picnic", Metadata: datatypes.JSON(`{"width":1600,"height":900}`)},
		{Title: "Festival stage", MediaURL: "https://cdn.example.org/gallery/festival-1.jpg", Album: "festival"},
		{Title: "Dance workshop", MediaURL: "https://cdn.example.org/gallery/dance.mp4", Album: "workshops", MediaType: models.MediaVideo},
	} {
		it := item
		if err := tx.Where("media_url = ?", it.MediaURL).FirstOrCreate(&it).Error; err != nil {
			return err
		}
	}

	for _, fp := range []models.FeedPost{
		{Title: "Board meeting minutes", Body: "The minutes of the last board meeting are available on request."},
		{Title: "Volunteers wanted", Body: "We need help setting up the autumn festival."},
	} {
		post := fp
		if err := tx.Where("title = ?", post.Title).FirstOrCreate(&post).Error; err != nil {
			return err
		}
	}

	// -------------------------
	// 5) Memberships
	// -------------------------
	for _, m := range []models.Membership{
		{FirstName: "Jane", LastName: "Doe", Email: "jane@example.org", Status: models.MembershipApproved},
		{FirstName: "John", LastName: "Roe", Email: "john@example.org", Status: models.MembershipPending},
	} {
		row := m
		if err := tx.Where("email = ?", row.Email).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
