package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/project/dto"
	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type ProjectMemberCommand struct {
	ProjectID uint
	Username  string
}

// SetProjectLeadCommand sets the lead. An empty Username clears it.
type SetProjectLeadCommand struct {
	ProjectID uint
	Username  string
}

type UpdateProjectMembershipUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewUpdateProjectMembershipUseCase(projectRepo project.Repository, userRepo user.Repository, logger logger.Interface) *UpdateProjectMembershipUseCase {
	return &UpdateProjectMembershipUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *UpdateProjectMembershipUseCase) AddMember(ctx context.Context, cmd ProjectMemberCommand) (*dto.ProjectDTO, error) {
	uc.logger.Infow("adding project member", "project_id", cmd.ProjectID, "username", cmd.Username)

	return uc.update(ctx, cmd.ProjectID, cmd.Username, func(p *project.Project, u *user.User) bool {
		return p.AddMember(u.ID())
	})
}

func (uc *UpdateProjectMembershipUseCase) RemoveMember(ctx context.Context, cmd ProjectMemberCommand) (*dto.ProjectDTO, error) {
	uc.logger.Infow("removing project member", "project_id", cmd.ProjectID, "username", cmd.Username)

	return uc.update(ctx, cmd.ProjectID, cmd.Username, func(p *project.Project, u *user.User) bool {
		return p.RemoveMember(u.ID())
	})
}

func (uc *UpdateProjectMembershipUseCase) SetLead(ctx context.Context, cmd SetProjectLeadCommand) (*dto.ProjectDTO, error) {
	uc.logger.Infow("setting project lead", "project_id", cmd.ProjectID, "username", cmd.Username)

	if cmd.Username == "" {
		p, err := getProject(ctx, uc.projectRepo, cmd.ProjectID)
		if err != nil {
			return nil, err
		}
		p.SetLead(nil)
		return uc.save(ctx, p)
	}

	return uc.update(ctx, cmd.ProjectID, cmd.Username, func(p *project.Project, u *user.User) bool {
		id := u.ID()
		p.SetLead(&id)
		return true
	})
}

// update applies change and saves only when it reports a modification.
func (uc *UpdateProjectMembershipUseCase) update(
	ctx context.Context,
	projectID uint,
	username string,
	change func(p *project.Project, u *user.User) bool,
) (*dto.ProjectDTO, error) {
	p, err := getProject(ctx, uc.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	u, err := getUserByUsername(ctx, uc.userRepo, username)
	if err != nil {
		return nil, err
	}

	if !change(p, u) {
		return uc.render(ctx, p)
	}
	return uc.save(ctx, p)
}

func (uc *UpdateProjectMembershipUseCase) save(ctx context.Context, p *project.Project) (*dto.ProjectDTO, error) {
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "id", p.ID(), "error", err)
		return nil, err
	}
	return uc.render(ctx, p)
}

func (uc *UpdateProjectMembershipUseCase) render(ctx context.Context, p *project.Project) (*dto.ProjectDTO, error) {
	names, err := usernamesFor(ctx, uc.userRepo, p)
	if err != nil {
		return nil, err
	}
	result := dto.ToProjectDTO(p, project.Progress{}, names)
	return &result, nil
}
