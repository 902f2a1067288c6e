package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/errors"
)

func getProject(ctx context.Context, repo project.Repository, id uint) (*project.Project, error) {
	if id == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", id))
	}
	return p, nil
}

func getUserByUsername(ctx context.Context, repo user.Repository, username string) (*user.User, error) {
	if username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	u, err := repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, errors.NewValidationError(fmt.Sprintf("user %q not found", username))
	}
	return u, nil
}

// usernamesFor resolves the lead and member IDs of the given projects.
func usernamesFor(ctx context.Context, repo user.Repository, projects ...*project.Project) (map[uint]string, error) {
	var ids []uint
	for _, p := range projects {
		ids = append(ids, p.MemberIDs()...)
		if lead := p.LeadID(); lead != nil {
			ids = append(ids, *lead)
		}
	}

	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	users, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range users {
		names[u.ID()] = u.Username()
	}
	return names, nil
}
