package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/project/dto"
)

type CreateProjectExecutor interface {
	Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error)
}

type UpdateProjectMembershipExecutor interface {
	AddMember(ctx context.Context, cmd ProjectMemberCommand) (*dto.ProjectDTO, error)
	RemoveMember(ctx context.Context, cmd ProjectMemberCommand) (*dto.ProjectDTO, error)
	SetLead(ctx context.Context, cmd SetProjectLeadCommand) (*dto.ProjectDTO, error)
}

type DeactivateProjectExecutor interface {
	Execute(ctx context.Context, projectID uint) error
}

type DeleteProjectExecutor interface {
	Execute(ctx context.Context, projectID uint) error
}

type ListProjectsExecutor interface {
	Execute(ctx context.Context) ([]dto.ProjectDTO, error)
}
