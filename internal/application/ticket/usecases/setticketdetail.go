package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/ticket/dto"
	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// SetTicketDetailCommand replaces the type-specific record. A nil Detail removes it.
type SetTicketDetailCommand struct {
	TicketID string
	Detail   *dto.DetailDTO
}

type SetTicketDetailUseCase struct {
	mutator ticketMutator
	logger  logger.Interface
}

func NewSetTicketDetailUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionRunner,
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *SetTicketDetailUseCase {
	return &SetTicketDetailUseCase{
		mutator: newTicketMutator(ticketRepo, txManager, projectRepo, techRepo, categoryRepo, userRepo, logger),
		logger:  logger,
	}
}

func (uc *SetTicketDetailUseCase) Execute(ctx context.Context, cmd SetTicketDetailCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing set ticket detail use case", "ticket_id", cmd.TicketID)

	t, err := uc.mutator.mutate(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		detail, err := cmd.Detail.ToDomainDetail(t.Type())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := t.SetDetail(detail); err != nil {
			return errors.NewValidationError(err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	refs, err := uc.mutator.refs.load(ctx, t)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(t, refs, nil, ""), nil
}
