// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"testing"

	"github.com/orderman/orderman-api/config"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RequireTestEnvironment fails the test unless GO_ENV is "test".
// An unset GO_ENV is treated as "test".
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env == "" {
		t.Setenv("GO_ENV", "test")
		return
	}
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q.", env)
	}
}

// NewTestDB opens a private in-memory SQLite database that is closed when the test ends.
// The schema is not created; callers migrate through the store.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	RequireTestEnvironment(t)

	db, err := config.OpenDatabase(&config.Config{DatabaseURL: "sqlite://:memory:", GoEnv: "test"})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	db = db.Session(&gorm.Session{Logger: logger.Default.LogMode(logger.Silent)})

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
