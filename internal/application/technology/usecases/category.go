package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/setracker/internal/application/technology/dto"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
	"github.com/orris-inc/setracker/internal/shared/mapper"
)

type CreateCategoryCommand struct {
	Name        string
	Description string
	Color       string
}

type CreateCategoryUseCase struct {
	categoryRepo technology.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo technology.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing create category use case", "name", cmd.Name)

	category, err := technology.NewCategory(cmd.Name, cmd.Description, cmd.Color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, category.Name())
	if err != nil {
		uc.logger.Errorw("failed to check category name", "name", category.Name(), "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError(fmt.Sprintf("category %q already exists", category.Name()))
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("category %q already exists", category.Name()))
		}
		uc.logger.Errorw("failed to create category", "name", category.Name(), "error", err)
		return nil, err
	}

	result := dto.ToCategoryDTO(category)
	return &result, nil
}

type ListCategoriesUseCase struct {
	categoryRepo technology.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo technology.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}
	result := mapper.MapSlice(categories, dto.ToCategoryDTO)
	if result == nil {
		result = []dto.CategoryDTO{}
	}
	return result, nil
}
