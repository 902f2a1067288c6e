package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type counterRow struct {
	ID    uint `gorm:"primaryKey"`
	Value int
}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&counterRow{}))
	return database
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		require.NoError(t, GetTxFromContext(ctx, database).Create(&counterRow{Value: 1}).Error)
		return errors.New("abort")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, database.Model(&counterRow{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestTransactionManager_NestedCallsShareTransaction(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(outer context.Context) error {
		return tm.RunInTransaction(outer, func(inner context.Context) error {
			assert.Same(t, GetTxFromContext(outer, database), GetTxFromContext(inner, database))
			return GetTxFromContext(inner, database).Create(&counterRow{Value: 2}).Error
		})
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, database.Model(&counterRow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
