package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/setracker/internal/application/project/dto"
	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type CreateProjectCommand struct {
	Name             string
	Description      string
	LeadUsername     string
	StartDate        *time.Time
	TargetCompletion *time.Time
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewCreateProjectUseCase(projectRepo project.Repository, userRepo user.Repository, logger logger.Interface) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	uc.logger.Infow("executing create project use case", "name", cmd.Name)

	p, err := project.NewProject(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := p.SetSchedule(cmd.StartDate, cmd.TargetCompletion); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.projectRepo.ExistsByName(ctx, p.Name())
	if err != nil {
		uc.logger.Errorw("failed to check project name", "name", p.Name(), "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError(fmt.Sprintf("project %q already exists", p.Name()))
	}

	if cmd.LeadUsername != "" {
		lead, err := getUserByUsername(ctx, uc.userRepo, cmd.LeadUsername)
		if err != nil {
			return nil, err
		}
		leadID := lead.ID()
		p.SetLead(&leadID)
	}

	if err := uc.projectRepo.Create(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("project %q already exists", p.Name()))
		}
		uc.logger.Errorw("failed to create project", "name", p.Name(), "error", err)
		return nil, err
	}

	uc.logger.Infow("project created successfully", "id", p.ID(), "name", p.Name())

	names, err := usernamesFor(ctx, uc.userRepo, p)
	if err != nil {
		return nil, err
	}
	result := dto.ToProjectDTO(p, project.Progress{}, names)
	return &result, nil
}
