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

// ListTicketsQuery filters tickets. Empty values match everything.
type ListTicketsQuery struct {
	Status    string
	ProjectID uint
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	refs       *referenceLoader
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		refs:       newReferenceLoader(projectRepo, techRepo, categoryRepo, userRepo),
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketSummaryDTO, error) {
	var filter ticket.TicketFilter
	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.ProjectID != 0 {
		projectID := query.ProjectID
		filter.ProjectID = &projectID
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	refs, err := uc.refs.load(ctx, tickets...)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketSummaryDTOs(tickets, refs), nil
}
