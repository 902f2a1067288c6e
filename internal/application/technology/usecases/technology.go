package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/setracker/internal/application/technology/dto"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type CreateTechnologyCommand struct {
	Name             string
	CategoryID       uint
	Description      string
	Version          string
	DocumentationURL string
}

type CreateTechnologyUseCase struct {
	techRepo     technology.Repository
	categoryRepo technology.CategoryRepository
	logger       logger.Interface
}

func NewCreateTechnologyUseCase(
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	logger logger.Interface,
) *CreateTechnologyUseCase {
	return &CreateTechnologyUseCase{
		techRepo:     techRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateTechnologyUseCase) Execute(ctx context.Context, cmd CreateTechnologyCommand) (*dto.TechnologyDTO, error) {
	uc.logger.Infow("executing create technology use case", "name", cmd.Name, "category_id", cmd.CategoryID)

	tech, err := technology.NewTechnology(cmd.Name, cmd.CategoryID, cmd.Description, cmd.Version, cmd.DocumentationURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	category, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to load category", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}
	if category == nil {
		return nil, errors.NewValidationError(fmt.Sprintf("category %d not found", cmd.CategoryID))
	}

	exists, err := uc.techRepo.ExistsByName(ctx, tech.Name())
	if err != nil {
		uc.logger.Errorw("failed to check technology name", "name", tech.Name(), "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError(fmt.Sprintf("technology %q already exists", tech.Name()))
	}

	if err := uc.techRepo.Create(ctx, tech); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("technology %q already exists", tech.Name()))
		}
		uc.logger.Errorw("failed to create technology", "name", tech.Name(), "error", err)
		return nil, err
	}

	uc.logger.Infow("technology created successfully", "id", tech.ID(), "name", tech.Name())
	result := dto.ToTechnologyDTO(tech, category.Name(), 0)
	return &result, nil
}

// DeleteTechnologyUseCase removes a technology. Tickets lose the tag.
type DeleteTechnologyUseCase struct {
	techRepo technology.Repository
	logger   logger.Interface
}

func NewDeleteTechnologyUseCase(techRepo technology.Repository, logger logger.Interface) *DeleteTechnologyUseCase {
	return &DeleteTechnologyUseCase{techRepo: techRepo, logger: logger}
}

func (uc *DeleteTechnologyUseCase) Execute(ctx context.Context, technologyID uint) error {
	uc.logger.Infow("executing delete technology use case", "technology_id", technologyID)

	if technologyID == 0 {
		return errors.NewValidationError("technology ID is required")
	}
	if err := uc.techRepo.Delete(ctx, technologyID); err != nil {
		uc.logger.Errorw("failed to delete technology", "technology_id", technologyID, "error", err)
		return err
	}
	return nil
}

// ListTechnologiesQuery filters by category name; empty lists all.
type ListTechnologiesQuery struct {
	Category string
}

type ListTechnologiesUseCase struct {
	techRepo     technology.Repository
	categoryRepo technology.CategoryRepository
	logger       logger.Interface
}

func NewListTechnologiesUseCase(
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	logger logger.Interface,
) *ListTechnologiesUseCase {
	return &ListTechnologiesUseCase{
		techRepo:     techRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListTechnologiesUseCase) Execute(ctx context.Context, query ListTechnologiesQuery) ([]dto.TechnologyDTO, error) {
	techs, err := uc.techRepo.List(ctx, query.Category)
	if err != nil {
		uc.logger.Errorw("failed to list technologies", "category", query.Category, "error", err)
		return nil, err
	}

	usage, err := uc.techRepo.UsageCounts(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count technology usage", "error", err)
		return nil, err
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID()] = c.Name()
	}

	result := make([]dto.TechnologyDTO, 0, len(techs))
	for _, t := range techs {
		result = append(result, dto.ToTechnologyDTO(t, names[t.CategoryID()], usage[t.ID()]))
	}
	return result, nil
}
