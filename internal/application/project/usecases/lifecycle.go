package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type DeactivateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewDeactivateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *DeactivateProjectUseCase {
	return &DeactivateProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *DeactivateProjectUseCase) Execute(ctx context.Context, projectID uint) error {
	uc.logger.Infow("executing deactivate project use case", "project_id", projectID)

	p, err := getProject(ctx, uc.projectRepo, projectID)
	if err != nil {
		return err
	}
	if !p.IsActive() {
		return nil
	}

	p.Deactivate()
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to deactivate project", "project_id", projectID, "error", err)
		return err
	}
	return nil
}

// DeleteProjectUseCase removes a project together with its tickets, detail
// records, attachments and links.
type DeleteProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewDeleteProjectUseCase(projectRepo project.Repository, logger logger.Interface) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, projectID uint) error {
	uc.logger.Infow("executing delete project use case", "project_id", projectID)

	if _, err := getProject(ctx, uc.projectRepo, projectID); err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, projectID); err != nil {
		uc.logger.Errorw("failed to delete project", "project_id", projectID, "error", err)
		return err
	}

	uc.logger.Infow("project deleted", "project_id", projectID)
	return nil
}
