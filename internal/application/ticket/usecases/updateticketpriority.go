package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/ticket/dto"
	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type UpdateTicketPriorityCommand struct {
	TicketID string
	Priority string
}

type UpdateTicketPriorityUseCase struct {
	mutator ticketMutator
	logger  logger.Interface
}

func NewUpdateTicketPriorityUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionRunner,
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateTicketPriorityUseCase {
	return &UpdateTicketPriorityUseCase{
		mutator: newTicketMutator(ticketRepo, txManager, projectRepo, techRepo, categoryRepo, userRepo, logger),
		logger:  logger,
	}
}

func (uc *UpdateTicketPriorityUseCase) Execute(ctx context.Context, cmd UpdateTicketPriorityCommand) (*dto.TicketSummaryDTO, error) {
	uc.logger.Infow("executing update ticket priority use case", "ticket_id", cmd.TicketID, "priority", cmd.Priority)

	if cmd.Priority == "" {
		return nil, errors.NewValidationError("priority is required")
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.mutator.mutate(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		return t.ChangePriority(priority)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket priority updated", "ticket_id", t.Number(), "priority", priority)
	return uc.mutator.summary(ctx, t)
}
