package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/setracker/internal/application/ticket/dto"
	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/errors"
)

// referenceLoader resolves the project, technology and user IDs of a batch of
// tickets with one query per entity kind.
type referenceLoader struct {
	projectRepo  project.Repository
	techRepo     technology.Repository
	categoryRepo technology.CategoryRepository
	userRepo     user.Repository
}

func newReferenceLoader(
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
) *referenceLoader {
	return &referenceLoader{
		projectRepo:  projectRepo,
		techRepo:     techRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

func (l *referenceLoader) load(ctx context.Context, tickets ...*ticket.Ticket) (dto.References, error) {
	refs := dto.References{
		Projects:     make(map[uint]string),
		Technologies: make(map[uint]dto.TechnologyRef),
		Usernames:    make(map[uint]string),
	}
	if len(tickets) == 0 {
		return refs, nil
	}

	projectIDs := make(map[uint]struct{})
	var techIDs, userIDs []uint
	for _, t := range tickets {
		projectIDs[t.ProjectID()] = struct{}{}
		techIDs = append(techIDs, t.TechnologyIDs()...)
		userIDs = append(userIDs, t.AssigneeIDs()...)
		for _, id := range []*uint{t.OwnerID(), t.Reporter().UserID, t.Audit().CreatedBy, t.Audit().ModifiedBy} {
			if id != nil {
				userIDs = append(userIDs, *id)
			}
		}
	}

	for id := range projectIDs {
		p, err := l.projectRepo.GetByID(ctx, id)
		if err != nil {
			return refs, fmt.Errorf("failed to load project %d: %w", id, err)
		}
		if p != nil {
			refs.Projects[id] = p.Name()
		}
	}

	if len(techIDs) > 0 {
		techs, err := l.techRepo.GetByIDs(ctx, techIDs)
		if err != nil {
			return refs, fmt.Errorf("failed to load technologies: %w", err)
		}
		categories, err := l.categoryNames(ctx)
		if err != nil {
			return refs, err
		}
		for _, tech := range techs {
			refs.Technologies[tech.ID()] = dto.TechnologyRef{
				Name:     tech.Name(),
				Category: categories[tech.CategoryID()],
			}
		}
	}

	if len(userIDs) > 0 {
		users, err := l.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			return refs, fmt.Errorf("failed to load users: %w", err)
		}
		for _, u := range users {
			refs.Usernames[u.ID()] = u.Username()
		}
	}

	return refs, nil
}

func (l *referenceLoader) categoryNames(ctx context.Context) (map[uint]string, error) {
	categories, err := l.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load technology categories: %w", err)
	}
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID()] = c.Name()
	}
	return names, nil
}

// resolveTeamMembers maps usernames to users, rejecting unknown or external accounts.
func resolveTeamMembers(ctx context.Context, userRepo user.Repository, usernames []string) ([]*user.User, error) {
	if len(usernames) == 0 {
		return nil, nil
	}

	users, err := userRepo.GetByUsernames(ctx, usernames)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	byName := make(map[string]*user.User, len(users))
	for _, u := range users {
		byName[u.Username()] = u
	}

	result := make([]*user.User, 0, len(usernames))
	seen := make(map[string]struct{}, len(usernames))
	for _, name := range usernames {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		u, ok := byName[name]
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("user %q not found", name))
		}
		if !u.IsTeamMember() {
			return nil, errors.NewValidationError(fmt.Sprintf("user %q is not a team member", name))
		}
		result = append(result, u)
	}
	return result, nil
}

// validateTechnologies ensures every ID resolves to an existing technology.
func validateTechnologies(ctx context.Context, techRepo technology.Repository, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	techs, err := techRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load technologies: %w", err)
	}

	found := make(map[uint]struct{}, len(techs))
	for _, t := range techs {
		found[t.ID()] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return errors.NewValidationError(fmt.Sprintf("technology %d not found", id))
		}
	}
	return nil
}

func getTicketByNumber(ctx context.Context, repo ticket.TicketRepository, number string) (*ticket.Ticket, error) {
	if number == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	t, err := repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %s not found", number))
	}
	return t, nil
}
