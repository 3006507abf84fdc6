// Package dbtest opens throwaway sqlite databases for tests.
package dbtest

import (
	"testing"

	"economy-manager/core/database"

	"gorm.io/gorm"
)

// New returns an in-memory database with models migrated.
func New(t testing.TB, models ...any) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	if err := database.Migrate(db, models...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
