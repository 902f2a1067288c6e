package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose for MySQL and AutoMigrate for SQLite, whose
// dialect the SQL scripts do not target.
func NewManager(driver string, log logger.Interface) *Manager {
	var strategy Strategy
	switch driver {
	case "mysql":
		strategy = NewGooseStrategy(log)
	default:
		strategy = NewGormAutoMigrateStrategy(log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Up(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Up(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Down(ctx context.Context, db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", steps)
	}
	if err := m.strategy.Down(ctx, db, steps); err != nil {
		return fmt.Errorf("rollback failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

type TableStatus struct {
	Name    string
	Present bool
}

type Status struct {
	Strategy string
	Version  int64
	Tables   []TableStatus
}

// Status reports the schema version and which model tables exist.
func (m *Manager) Status(ctx context.Context, db *gorm.DB) (*Status, error) {
	version, err := m.strategy.Version(ctx, db)
	if err != nil {
		return nil, err
	}

	status := &Status{Strategy: m.strategy.GetName(), Version: version}
	migrator := db.WithContext(ctx).Migrator()
	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		status.Tables = append(status.Tables, TableStatus{
			Name:    stmt.Schema.Table,
			Present: migrator.HasTable(model),
		})
	}
	return status, nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
