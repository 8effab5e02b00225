package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/site")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")
	t.Setenv("RATE_LIMIT_BACKEND", "")
	t.Setenv("FEED_COOKIE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "dev-secret-only", cfg.JWTSecret)
	assert.Equal(t, 5, cfg.RateLimit.Max)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "memory", cfg.RateLimit.Backend)
	assert.Equal(t, "member_feed_access", cfg.FeedCookieName)
	assert.Equal(t, 30*24*time.Hour, cfg.FeedCookieTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MYSQL_DSN", "dsn")
	t.Setenv("RATE_LIMIT_MAX", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "90s")
	t.Setenv("RATE_LIMIT_BACKEND", "Redis")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.RateLimit.Max)
	assert.Equal(t, 90*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "redis", cfg.RateLimit.Backend)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingDSN)
}

func TestValidate_RejectsUnknownBackend(t *testing.T) {
	cfg := Config{
		DSN:       "dsn",
		RateLimit: RateLimitConfig{Max: 1, Window: time.Second, Backend: "memcached"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := Config{
		DSN:       "dsn",
		Env:       "production",
		JWTSecret: "dev-secret-only",
		RateLimit: RateLimitConfig{Max: 1, Window: time.Second, Backend: "memory"},
	}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "real"
	assert.NoError(t, cfg.Validate())
}
