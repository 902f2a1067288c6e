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

type UpdateTicketStatusCommand struct {
	TicketID string
	Status   string
}

type UpdateTicketStatusUseCase struct {
	mutator ticketMutator
	logger  logger.Interface
}

func NewUpdateTicketStatusUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionRunner,
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		mutator: newTicketMutator(ticketRepo, txManager, projectRepo, techRepo, categoryRepo, userRepo, logger),
		logger:  logger,
	}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*dto.TicketSummaryDTO, error) {
	uc.logger.Infow("executing update ticket status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.mutator.mutate(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		return t.ChangeStatus(status)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket status updated", "ticket_id", t.Number(), "status", status)
	return uc.mutator.summary(ctx, t)
}
