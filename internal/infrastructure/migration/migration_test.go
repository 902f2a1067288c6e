package migration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/infrastructure/database"
	"github.com/orris-inc/setracker/internal/shared/config"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "migrate.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestNewManager_PicksStrategyByDriver(t *testing.T) {
	log := logger.NewLogger()
	assert.Equal(t, "goose", NewManager("mysql", log).GetStrategy().GetName())
	assert.Equal(t, "gorm_auto_migrate", NewManager("sqlite", log).GetStrategy().GetName())
}

func TestManager_UpStatusDown(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	m := NewManager("sqlite", logger.NewLogger())

	status, err := m.Status(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.Version)

	require.NoError(t, m.Up(ctx, db))
	// Running again is a no-op.
	require.NoError(t, m.Up(ctx, db))

	status, err = m.Status(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.Version)
	require.NotEmpty(t, status.Tables)
	names := make([]string, 0, len(status.Tables))
	for _, table := range status.Tables {
		assert.True(t, table.Present, "table %s should exist", table.Name)
		names = append(names, table.Name)
	}
	assert.Contains(t, names, "tickets")
	assert.Contains(t, names, "ticket_sequences")

	require.NoError(t, m.Down(ctx, db, 1))
	status, err = m.Status(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.Version)
	for _, table := range status.Tables {
		assert.False(t, table.Present, "table %s should be dropped", table.Name)
	}
}

func TestManager_DownRejectsZeroSteps(t *testing.T) {
	m := NewManager("sqlite", logger.NewLogger())
	assert.Error(t, m.Down(context.Background(), openTestDB(t), 0))
}

func TestScriptsAreEmbedded(t *testing.T) {
	entries, err := scriptsFS.ReadDir(scriptsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_init_schema.sql", entries[0].Name())
}
