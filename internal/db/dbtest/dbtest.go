// Package dbtest opens a throwaway SQLite store for package tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/Skotchmaster/shop/internal/db"
)

func InitTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "shop.db") + "?_pragma=foreign_keys(1)"
	gdb, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	if err := db.Migrate(context.Background(), gdb); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return gdb
}
