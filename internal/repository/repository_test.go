package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"community_site/internal/feed"
	"community_site/internal/membership"
	"community_site/internal/models"
	"community_site/internal/registration"
	"community_site/internal/testing/testdb"
)

var ctx = context.Background()

func TestMembershipRepository_FindByEmailIgnoresCase(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewMembershipRepository(gdb)

	require.NoError(t, repo.Create(ctx, &models.Membership{FirstName: "Jane", Email: "jane@x.com"}))
	require.NoError(t, repo.Create(ctx, &models.Membership{FirstName: "Jane", Email: "Jane@X.com", Status: models.MembershipApproved}))
	require.NoError(t, repo.Create(ctx, &models.Membership{FirstName: "Bob", Email: "bob@x.com"}))
	require.NoError(t, repo.Create(ctx, &models.Membership{FirstName: "Jane", Email: " jane@x.com"}))

	rows, err := repo.FindByEmail(ctx, "JANE@X.COM")
	require.NoError(t, err)
	require.Len(t, rows, 2, "match is exact modulo case, no whitespace trimming")
	assert.Less(t, rows[0].ID, rows[1].ID)
	assert.Equal(t, models.MembershipPending, rows[0].Status)
}

func TestMembershipRepository_WithVerifier(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewMembershipRepository(gdb)
	require.NoError(t, repo.Create(ctx, &models.Membership{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Status: models.MembershipApproved}))

	d, err := membership.NewVerifier(repo).Verify(ctx, "Jane Doe", "JANE@X.COM")
	require.NoError(t, err)
	assert.Equal(t, membership.Granted, d.Outcome)
}

func TestMembershipRepository_SetStatus(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewMembershipRepository(gdb)
	m := &models.Membership{FirstName: "Jane", Email: "jane@x.com"}
	require.NoError(t, repo.Create(ctx, m))

	at := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	got, err := repo.SetStatus(ctx, m.ID, models.MembershipApproved, at)
	require.NoError(t, err)
	assert.Equal(t, models.MembershipApproved, got.Status)
	require.NotNil(t, got.ReviewedAt)

	_, err = repo.SetStatus(ctx, 999, models.MembershipApproved, at)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMembershipRepository_ListByStatus(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewMembershipRepository(gdb)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Membership{FirstName: "P", Email: fmt.Sprintf("p%d@x.com", i)}))
	}
	require.NoError(t, repo.Create(ctx, &models.Membership{FirstName: "A", Email: "a@x.com", Status: models.MembershipApproved}))

	res, err := repo.List(ctx, "pending", feed.NewPage(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.Len(t, res.Items, 2)
	assert.True(t, res.HasMore)
}

func seedEvents(t *testing.T, gdb *gorm.DB, now time.Time) {
	t.Helper()
	for i := 1; i <= 12; i++ {
		require.NoError(t, gdb.Create(&models.Event{
			Title:            fmt.Sprintf("Event %d", i),
			Slug:             fmt.Sprintf("event-%d", i),
			StartsAt:         now.Add(time.Duration(i) * 24 * time.Hour),
			RegistrationOpen: true,
		}).Error)
	}
	require.NoError(t, gdb.Create(&models.Event{
		Title:    "Past",
		Slug:     "past",
		StartsAt: now.Add(-24 * time.Hour),
	}).Error)
}

func TestEventRepository_UpcomingPagination(t *testing.T) {
	gdb := testdb.New(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	seedEvents(t, gdb, now)
	repo := NewEventRepository(gdb)

	res, err := repo.Upcoming(ctx, now, feed.NewPage(2, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Total)
	require.Len(t, res.Items, 5)
	assert.Equal(t, "event-6", res.Items[0].Slug)
	assert.Equal(t, "event-10", res.Items[4].Slug)

	res, err = repo.Upcoming(ctx, now, feed.NewPage(3, 5))
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "event-11", res.Items[0].Slug)
	assert.Equal(t, "event-12", res.Items[1].Slug)
	assert.False(t, res.HasMore)
}

func TestEventRepository_BySlug(t *testing.T) {
	gdb := testdb.New(t)
	seedEvents(t, gdb, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	repo := NewEventRepository(gdb)

	ev, err := repo.BySlug(ctx, "event-3")
	require.NoError(t, err)
	assert.Equal(t, "Event 3", ev.Title)

	_, err = repo.BySlug(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindEvent(ctx, 9999)
	assert.ErrorIs(t, err, registration.ErrEventNotFound)
}

func TestParticipationRepository_CreateWritesGuests(t *testing.T) {
	gdb := testdb.New(t)
	now := time.Now().UTC()
	seedEvents(t, gdb, now)
	repo := NewParticipationRepository(gdb)

	svc := registration.NewService(repo)
	p, err := svc.Register(ctx, registration.Request{
		EventID:    1,
		Registrant: registration.Registrant{Name: "Sam", Email: "sam@x.com", Age: models.AgeAdult, Sex: models.SexMale},
		AdditionalGuests: []registration.Guest{
			{ID: "g1", Name: "Mia", Age: models.AgeKid, Sex: models.SexFemale},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	rows, err := repo.ForEvent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].People)
	assert.Nil(t, rows[0].Teens, "zero buckets are stored as NULL")
	require.Len(t, rows[0].Guests, 2)
	assert.True(t, rows[0].Guests[0].IsRegistrant)
	assert.Equal(t, "g1", rows[0].Guests[1].ClientRef)

	totals, err := repo.Totals(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, EventTotals{Registrations: 1, People: 2, Adults: 1, Kids: 1}, totals)
}

func TestParticipationRepository_GuestFailureRollsBack(t *testing.T) {
	gdb := testdb.New(t)
	seedEvents(t, gdb, time.Now().UTC())
	require.NoError(t, gdb.Callback().Create().Before("gorm:create").Register("test:fail_guests", func(db *gorm.DB) {
		if db.Statement.Table == "participation_guests" {
			_ = db.AddError(errors.New("guest insert failed"))
		}
	}))
	repo := NewParticipationRepository(gdb)

	p := &models.Participation{EventID: 1, RegistrantName: "Sam", RegistrantEmail: "sam@x.com", People: 1}
	err := repo.Create(ctx, p, []models.ParticipationGuest{{Name: "Sam", AgeBand: models.AgeAdult, IsRegistrant: true}})
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.Participation{}).Count(&count).Error)
	assert.Zero(t, count, "participation row must not outlive a failed guest insert")
}

func seedPosts(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	news := models.Tag{Name: "News", Slug: "news"}
	garden := models.Tag{Name: "Garden", Slug: "garden"}
	require.NoError(t, gdb.Create(&news).Error)
	require.NoError(t, gdb.Create(&garden).Error)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 6; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		tags := []models.Tag{news}
		if i%2 == 0 {
			tags = append(tags, garden)
		}
		require.NoError(t, gdb.Create(&models.Post{
			Title:       fmt.Sprintf("Post %d", i),
			Slug:        fmt.Sprintf("post-%d", i),
			Body:        "body",
			Published:   i != 6,
			PublishedAt: &at,
			Tags:        tags,
		}).Error)
	}
}

func TestPostRepository_PublishedNewestFirst(t *testing.T) {
	gdb := testdb.New(t)
	seedPosts(t, gdb)
	repo := NewPostRepository(gdb)

	res, err := repo.Published(ctx, "", feed.NewPage(1, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Total)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "post-5", res.Items[0].Slug)
	assert.Empty(t, res.Items[0].Body)
	assert.NotEmpty(t, res.Items[0].Tags)
}

func TestPostRepository_FilterByTag(t *testing.T) {
	gdb := testdb.New(t)
	seedPosts(t, gdb)
	repo := NewPostRepository(gdb)

	res, err := repo.Published(ctx, "garden", feed.NewPage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	assert.Equal(t, "post-4", res.Items[0].Slug)
	assert.Equal(t, "post-2", res.Items[1].Slug)
}

func TestPostRepository_BySlugHidesDrafts(t *testing.T) {
	gdb := testdb.New(t)
	seedPosts(t, gdb)
	repo := NewPostRepository(gdb)

	post, err := repo.BySlug(ctx, "post-2")
	require.NoError(t, err)
	assert.Equal(t, "body", post.Body)
	assert.Len(t, post.Tags, 2)

	_, err = repo.BySlug(ctx, "post-6")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepository_TagCounts(t *testing.T) {
	gdb := testdb.New(t)
	seedPosts(t, gdb)

	tags, err := NewPostRepository(gdb).Tags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, TagCount{ID: tags[0].ID, Name: "Garden", Slug: "garden", PostCount: 2}, tags[0])
	assert.Equal(t, int64(5), tags[1].PostCount)
}

func TestGalleryRepository(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewGalleryRepository(gdb)
	for i := 1; i <= 4; i++ {
		album := "picnic"
		if i > 3 {
			album = "festival"
		}
		require.NoError(t, gdb.Create(&models.GalleryItem{
			Title:    fmt.Sprintf("Photo %d", i),
			MediaURL: fmt.Sprintf("https://cdn.example.org/%d.jpg", i),
			Album:    album,
		}).Error)
	}

	res, err := repo.List(ctx, "picnic", feed.NewPage(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.True(t, res.HasMore)

	albums, err := repo.Albums(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"festival", "picnic"}, albums)

	_, err = repo.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuditRepository_CursorPagination(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewAuditRepository(gdb)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(ctx, &models.AuditLog{Action: "membership.status", ResourceType: "membership", ResourceID: int64(i)}))
	}

	page1, next, err := repo.List(ctx, 0, "", 3)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	require.NotNil(t, next)

	page2, next2, err := repo.List(ctx, *next, "", 3)
	require.NoError(t, err)
	assert.Len(t, page2, 2)
	assert.Nil(t, next2)
	assert.Less(t, page2[0].ID, page1[2].ID)
}
