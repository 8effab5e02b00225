// Package testdb opens a migrated in-memory SQLite database for tests that
// exercise gorm queries without a MySQL server.
package testdb

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"community_site/internal/db"
)

// New returns a fresh, fully migrated database that is closed when the test
// ends.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("testdb: open: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("testdb: handle: %v", err)
	}
	// A single connection keeps the in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("testdb: migrate: %v", err)
	}
	return gdb
}
