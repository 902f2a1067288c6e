package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/technology/dto"
)

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]dto.CategoryDTO, error)
}

type CreateTechnologyExecutor interface {
	Execute(ctx context.Context, cmd CreateTechnologyCommand) (*dto.TechnologyDTO, error)
}

type DeleteTechnologyExecutor interface {
	Execute(ctx context.Context, technologyID uint) error
}

type ListTechnologiesExecutor interface {
	Execute(ctx context.Context, query ListTechnologiesQuery) ([]dto.TechnologyDTO, error)
}
