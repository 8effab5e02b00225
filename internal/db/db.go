package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"community_site/internal/models"
)

// Connect opens the MySQL connection pool and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("database ping: %w", err)
	}

	slog.Info("database connected")
	return gdb, nil
}

// Models lists every table the site owns, in dependency order.
func Models() []any {
	return []any{
		&models.Admin{},
		&models.AuditLog{},
		&models.Membership{},
		&models.Tag{},
		&models.Post{},
		&models.FeedPost{},
		&models.GalleryItem{},
		&models.Event{},
		&models.Participation{},
		&models.ParticipationGuest{},
	}
}

func AutoMigrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
