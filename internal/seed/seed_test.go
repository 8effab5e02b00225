package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"community_site/internal/auth"
	"community_site/internal/models"
	"community_site/internal/testing/testdb"
)

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestFirstSetup_AdminOnly(t *testing.T) {
	db := testdb.New(t)

	require.NoError(t, FirstSetup(context.Background(), db, Options{AdminEmail: "Boss@Example.org", AdminPassword: "pw"}))

	var admin models.Admin
	require.NoError(t, db.First(&admin).Error)
	assert.Equal(t, "boss@example.org", admin.Email)
	assert.True(t, auth.CheckPassword(admin.PasswordHash, "pw"))
	assert.Zero(t, count(t, db, &models.Event{}))
}

func TestFirstSetup_SampleIsIdempotent(t *testing.T) {
	db := testdb.New(t)
	opts := Options{Sample: true, Now: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}

	require.NoError(t, FirstSetup(context.Background(), db, opts))
	require.NoError(t, FirstSetup(context.Background(), db, opts))

	assert.Equal(t, int64(1), count(t, db, &models.Admin{}))
	assert.Equal(t, int64(3), count(t, db, &models.Post{}))
	assert.Equal(t, int64(3), count(t, db, &models.Tag{}))
	assert.Equal(t, int64(3), count(t, db, &models.Event{}))
	assert.Equal(t, int64(3), count(t, db, &models.GalleryItem{}))
	assert.Equal(t, int64(2), count(t, db, &models.FeedPost{}))
	assert.Equal(t, int64(2), count(t, db, &models.Membership{}))

	var post models.Post
	require.NoError(t, db.Preload("Tags").Where("slug = ?", "summer-camp").First(&post).Error)
	assert.Len(t, post.Tags, 2)
}
