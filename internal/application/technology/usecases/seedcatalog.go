package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/setracker/internal/application/technology/dto"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SeedCatalogUseCase inserts the categories and technologies of a catalog.
// Entries that already exist by name are skipped, so seeding is repeatable.
type SeedCatalogUseCase struct {
	categoryRepo technology.CategoryRepository
	techRepo     technology.Repository
	txManager    TransactionRunner
	logger       logger.Interface
}

func NewSeedCatalogUseCase(
	categoryRepo technology.CategoryRepository,
	techRepo technology.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{
		categoryRepo: categoryRepo,
		techRepo:     techRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *SeedCatalogUseCase) Execute(ctx context.Context, catalog dto.Catalog) (*dto.SeedResult, error) {
	uc.logger.Infow("executing seed catalog use case", "categories", len(catalog.Categories))

	var result dto.SeedResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		result = dto.SeedResult{}
		for _, entry := range catalog.Categories {
			category, created, err := uc.ensureCategory(txCtx, entry)
			if err != nil {
				return err
			}
			if created {
				result.CategoriesCreated++
			} else {
				result.Skipped++
			}

			for _, techEntry := range entry.Technologies {
				created, err := uc.ensureTechnology(txCtx, category, techEntry)
				if err != nil {
					return err
				}
				if created {
					result.TechnologiesCreated++
				} else {
					result.Skipped++
				}
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to seed catalog", "error", err)
		return nil, err
	}

	uc.logger.Infow("catalog seeded",
		"categories_created", result.CategoriesCreated,
		"technologies_created", result.TechnologiesCreated,
		"skipped", result.Skipped,
	)
	return &result, nil
}

func (uc *SeedCatalogUseCase) ensureCategory(ctx context.Context, entry dto.CatalogCategory) (*technology.Category, bool, error) {
	existing, err := uc.categoryRepo.GetByName(ctx, entry.Name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	category, err := technology.NewCategory(entry.Name, entry.Description, entry.Color)
	if err != nil {
		return nil, false, errors.NewValidationError(fmt.Sprintf("category %q: %v", entry.Name, err))
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, false, err
	}
	return category, true, nil
}

func (uc *SeedCatalogUseCase) ensureTechnology(ctx context.Context, category *technology.Category, entry dto.CatalogTechnology) (bool, error) {
	exists, err := uc.techRepo.ExistsByName(ctx, entry.Name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	tech, err := technology.NewTechnology(entry.Name, category.ID(), entry.Description, entry.Version, entry.DocumentationURL)
	if err != nil {
		return false, errors.NewValidationError(fmt.Sprintf("technology %q: %v", entry.Name, err))
	}
	if err := uc.techRepo.Create(ctx, tech); err != nil {
		return false, err
	}
	return true, nil
}
