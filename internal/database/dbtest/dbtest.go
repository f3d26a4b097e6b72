// Package dbtest opens throwaway in-memory SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"starwars/internal/database"
)

// New returns a migrated in-memory database. The pool is pinned to a single
// connection because every new SQLite :memory: connection is a fresh database.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:", database.Options{LogLevel: "silent"})
	require.NoError(t, err, "failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db), "failed to migrate test database")
	return db
}

// Count returns the number of rows in model's table.
func Count(t testing.TB, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
