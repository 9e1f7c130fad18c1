package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "stride-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return database
}
