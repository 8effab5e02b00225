package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DSN       string
	JWTSecret string
	AppPort   string
	Env       string

	// ContentPath points at the YAML file holding the static pages.
	ContentPath string

	// TrustedProxies is handed to gin so ClientIP honours X-Forwarded-For.
	TrustedProxies []string

	RateLimit RateLimitConfig
	Redis     RedisConfig

	FeedCookieName string
	FeedCookieTTL  time.Duration
	SecureCookies  bool
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
	// Backend is "memory" or "redis".
	Backend string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

var ErrMissingDSN = errors.New("MYSQL_DSN not set in environment")

func Load() (Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info(".env file not found, using system environment variables")
	} else {
		slog.Info(".env file loaded")
	}

	cfg := Config{
		DSN:            os.Getenv("MYSQL_DSN"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AppPort:        os.Getenv("APP_PORT"),
		Env:            getEnv("APP_ENV", "development"),
		ContentPath:    getEnv("CONTENT_PATH", "content/pages.yaml"),
		TrustedProxies: getSliceEnv("TRUSTED_PROXIES", nil),
		RateLimit: RateLimitConfig{
			Max:     getIntEnv("RATE_LIMIT_MAX", 5),
			Window:  getDurationEnv("RATE_LIMIT_WINDOW", 15*time.Minute),
			Backend: strings.ToLower(getEnv("RATE_LIMIT_BACKEND", "memory")),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getIntEnv("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "site:ratelimit"),
		},
		FeedCookieName: getEnv("FEED_COOKIE_NAME", "member_feed_access"),
		FeedCookieTTL:  getDurationEnv("FEED_COOKIE_TTL", 30*24*time.Hour),
		SecureCookies:  getBoolEnv("SECURE_COOKIES", false),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-only"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg, cfg.Validate()
}

// Validate reports configuration that cannot be defaulted.
func (c Config) Validate() error {
	if c.DSN == "" {
		return ErrMissingDSN
	}
	if c.RateLimit.Max <= 0 {
		return errors.New("RATE_LIMIT_MAX must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive")
	}
	switch c.RateLimit.Backend {
	case "memory", "redis":
	default:
		return errors.New("RATE_LIMIT_BACKEND must be memory or redis")
	}
	if c.Env == "production" && c.JWTSecret == "dev-secret-only" {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getSliceEnv(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
