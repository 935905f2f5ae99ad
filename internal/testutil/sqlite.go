// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"lab-notebook-be/pkg/database"

	"gorm.io/gorm"
)

// NewTestDB opens a migrated SQLite database in a per-test temp dir.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "experiments.db"), "silent")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func Ptr(s string) *string {
	return &s
}

func Int64Ptr(v int64) *int64 {
	return &v
}
