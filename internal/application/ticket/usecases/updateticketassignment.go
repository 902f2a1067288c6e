package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/ticket/dto"
	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/logger"
	"github.com/orris-inc/setracker/internal/shared/mapper"
)

// UpdateTicketAssignmentCommand replaces the assigned users of a ticket.
type UpdateTicketAssignmentCommand struct {
	TicketID          string
	AssignedUsernames []string
}

type UpdateTicketAssignmentUseCase struct {
	mutator  ticketMutator
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateTicketAssignmentUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionRunner,
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateTicketAssignmentUseCase {
	return &UpdateTicketAssignmentUseCase{
		mutator:  newTicketMutator(ticketRepo, txManager, projectRepo, techRepo, categoryRepo, userRepo, logger),
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateTicketAssignmentUseCase) Execute(ctx context.Context, cmd UpdateTicketAssignmentCommand) (*dto.TicketSummaryDTO, error) {
	uc.logger.Infow("executing update ticket assignment use case",
		"ticket_id", cmd.TicketID,
		"assignees", cmd.AssignedUsernames,
	)

	assignees, err := resolveTeamMembers(ctx, uc.userRepo, cmd.AssignedUsernames)
	if err != nil {
		return nil, err
	}
	ids := mapper.MapSlice(assignees, func(u *user.User) uint { return u.ID() })

	t, err := uc.mutator.mutate(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		t.SetAssignees(ids)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket assignment updated", "ticket_id", t.Number(), "count", len(ids))
	return uc.mutator.summary(ctx, t)
}
