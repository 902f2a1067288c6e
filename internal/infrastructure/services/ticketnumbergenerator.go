package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/db"
)

// NumberSource lists numbers already issued, used to seed a fresh counter.
type NumberSource interface {
	NumbersForYear(ctx context.Context, prefix string, year int) ([]string, error)
}

// DatabaseNumberGenerator issues ticket numbers from a per-year counter row.
// The increment takes the row lock, so concurrent creators in one year are
// serialised until their transaction ends. Call Next inside the transaction
// that inserts the ticket.
type DatabaseNumberGenerator struct {
	db      *gorm.DB
	prefix  string
	numbers NumberSource
}

func NewDatabaseNumberGenerator(db *gorm.DB, prefix string, numbers NumberSource) *DatabaseNumberGenerator {
	if prefix == "" {
		prefix = ticket.DefaultNumberPrefix
	}
	return &DatabaseNumberGenerator{db: db, prefix: prefix, numbers: numbers}
}

func (g *DatabaseNumberGenerator) Next(ctx context.Context, year int) (string, error) {
	tx := db.GetTxFromContext(ctx, g.db)
	scope := ticket.NumberScope(g.prefix, year)

	if err := g.ensureCounter(ctx, tx, scope, year); err != nil {
		return "", err
	}

	if err := tx.Model(&models.TicketSequenceModel{}).
		Where("scope = ?", scope).
		UpdateColumn("last_value", gorm.Expr("last_value + ?", 1)).Error; err != nil {
		return "", fmt.Errorf("failed to increment ticket sequence: %w", err)
	}

	var seq models.TicketSequenceModel
	if err := tx.Where("scope = ?", scope).First(&seq).Error; err != nil {
		return "", fmt.Errorf("failed to read ticket sequence: %w", err)
	}

	number := ticket.FormatNumber(g.prefix, year, seq.LastValue)
	taken, err := g.isTaken(tx, number)
	if err != nil {
		return "", err
	}
	if !taken {
		return number, nil
	}
	return g.resync(ctx, tx, scope, year)
}

func (g *DatabaseNumberGenerator) isTaken(tx *gorm.DB, number string) (bool, error) {
	var count int64
	if err := tx.Model(&models.TicketModel{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket number: %w", err)
	}
	return count > 0, nil
}

// resync moves a counter that fell behind the issued numbers (rows inserted
// outside the generator) past their maximum.
func (g *DatabaseNumberGenerator) resync(ctx context.Context, tx *gorm.DB, scope string, year int) (string, error) {
	issued, err := g.numbers.NumbersForYear(ctx, g.prefix, year)
	if err != nil {
		return "", err
	}
	next := ticket.MaxSequence(issued, g.prefix, year) + 1

	if err := tx.Model(&models.TicketSequenceModel{}).
		Where("scope = ?", scope).
		UpdateColumn("last_value", next).Error; err != nil {
		return "", fmt.Errorf("failed to resync ticket sequence: %w", err)
	}
	return ticket.FormatNumber(g.prefix, year, next), nil
}

// ensureCounter creates the counter for scope, seeded from the numeric
// maximum of numbers issued before counters existed.
func (g *DatabaseNumberGenerator) ensureCounter(ctx context.Context, tx *gorm.DB, scope string, year int) error {
	var count int64
	if err := tx.Model(&models.TicketSequenceModel{}).Where("scope = ?", scope).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check ticket sequence: %w", err)
	}
	if count > 0 {
		return nil
	}

	issued, err := g.numbers.NumbersForYear(ctx, g.prefix, year)
	if err != nil {
		return err
	}

	seed := &models.TicketSequenceModel{
		Scope:     scope,
		LastValue: ticket.MaxSequence(issued, g.prefix, year),
	}
	// A concurrent creator may have inserted the row first; either seed is correct.
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
		return fmt.Errorf("failed to seed ticket sequence: %w", err)
	}
	return nil
}
