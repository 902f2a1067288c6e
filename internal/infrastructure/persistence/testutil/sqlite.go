// Package testutil opens throwaway SQLite databases with the full schema.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/infrastructure/database"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/config"
)

// NewSQLiteDB returns a migrated database file under t.TempDir. Foreign keys
// are enforced, so cascades behave as they do in MySQL.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), uuid.NewString()+".db"),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
