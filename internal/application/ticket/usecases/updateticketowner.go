package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/ticket/dto"
	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// UpdateTicketOwnerCommand sets the primary owner. An empty OwnerUsername clears it.
type UpdateTicketOwnerCommand struct {
	TicketID      string
	OwnerUsername string
}

type UpdateTicketOwnerUseCase struct {
	mutator     ticketMutator
	projectRepo project.Repository
	userRepo    user.Repository
	notifier    OwnerNotifier
	logger      logger.Interface
}

func NewUpdateTicketOwnerUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionRunner,
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
	notifier OwnerNotifier,
	logger logger.Interface,
) *UpdateTicketOwnerUseCase {
	return &UpdateTicketOwnerUseCase{
		mutator:     newTicketMutator(ticketRepo, txManager, projectRepo, techRepo, categoryRepo, userRepo, logger),
		projectRepo: projectRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *UpdateTicketOwnerUseCase) Execute(ctx context.Context, cmd UpdateTicketOwnerCommand) (*dto.TicketSummaryDTO, error) {
	uc.logger.Infow("executing update ticket owner use case", "ticket_id", cmd.TicketID, "owner", cmd.OwnerUsername)

	var owner *user.User
	if cmd.OwnerUsername != "" {
		owners, err := resolveTeamMembers(ctx, uc.userRepo, []string{cmd.OwnerUsername})
		if err != nil {
			return nil, err
		}
		owner = owners[0]
	}

	changed := false
	t, err := uc.mutator.mutate(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		if owner == nil {
			changed = t.HasOwner()
			t.AssignOwner(nil)
			return nil
		}
		id := owner.ID()
		changed = t.OwnerID() == nil || *t.OwnerID() != id
		t.AssignOwner(&id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket owner updated", "ticket_id", t.Number(), "owner", cmd.OwnerUsername)

	if owner != nil && changed {
		projectName := ""
		if p, err := uc.projectRepo.GetByID(ctx, t.ProjectID()); err == nil && p != nil {
			projectName = p.Name()
		}
		notifyOwner(ctx, uc.notifier, uc.logger, t, projectName, owner)
	}

	return uc.mutator.summary(ctx, t)
}
