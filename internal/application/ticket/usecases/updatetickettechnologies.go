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

type UpdateTicketTechnologiesCommand struct {
	TicketID      string
	TechnologyIDs []uint
}

type UpdateTicketTechnologiesUseCase struct {
	mutator  ticketMutator
	techRepo technology.Repository
	logger   logger.Interface
}

func NewUpdateTicketTechnologiesUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionRunner,
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateTicketTechnologiesUseCase {
	return &UpdateTicketTechnologiesUseCase{
		mutator:  newTicketMutator(ticketRepo, txManager, projectRepo, techRepo, categoryRepo, userRepo, logger),
		techRepo: techRepo,
		logger:   logger,
	}
}

func (uc *UpdateTicketTechnologiesUseCase) Execute(ctx context.Context, cmd UpdateTicketTechnologiesCommand) (*dto.TicketSummaryDTO, error) {
	uc.logger.Infow("executing update ticket technologies use case",
		"ticket_id", cmd.TicketID,
		"technology_ids", cmd.TechnologyIDs,
	)

	if err := validateTechnologies(ctx, uc.techRepo, cmd.TechnologyIDs); err != nil {
		return nil, err
	}

	t, err := uc.mutator.mutate(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		t.SetTechnologies(cmd.TechnologyIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.mutator.summary(ctx, t)
}
