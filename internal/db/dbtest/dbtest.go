// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"trainboard/internal/db"
)

// Open returns an in-memory database with the schema migrated and foreign
// keys enforced. It is closed when the test finishes.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), db.Config())
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(gormDB))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gormDB
}
