package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/project/dto"
	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, userRepo user.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Execute lists projects by name with ticket counts computed on each call.
func (uc *ListProjectsUseCase) Execute(ctx context.Context) ([]dto.ProjectDTO, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, err
	}

	progress, err := uc.projectRepo.ProgressByProject(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute project progress", "error", err)
		return nil, err
	}

	names, err := usernamesFor(ctx, uc.userRepo, projects...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		result = append(result, dto.ToProjectDTO(p, progress[p.ID()], names))
	}
	return result, nil
}
