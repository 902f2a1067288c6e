package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/orris-inc/setracker/internal/application/ticket/dto"
	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// maxUpdateAttempts bounds how often a change is reapplied after another
// writer bumped the ticket version.
const maxUpdateAttempts = 3

// ticketMutator loads a ticket by number, applies a change and saves it in
// one transaction, then renders the list shape of the result.
type ticketMutator struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionRunner
	refs       *referenceLoader
	logger     logger.Interface
}

func newTicketMutator(
	ticketRepo ticket.TicketRepository,
	txManager TransactionRunner,
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
	logger logger.Interface,
) ticketMutator {
	return ticketMutator{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		refs:       newReferenceLoader(projectRepo, techRepo, categoryRepo, userRepo),
		logger:     logger,
	}
}

// mutate may run change more than once; change must only touch the ticket.
func (m ticketMutator) mutate(ctx context.Context, number string, change func(t *ticket.Ticket) error) (*ticket.Ticket, error) {
	var saved *ticket.Ticket
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		err := m.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			t, err := getTicketByNumber(txCtx, m.ticketRepo, number)
			if err != nil {
				return err
			}
			if err := change(t); err != nil {
				return err
			}
			if err := m.ticketRepo.Update(txCtx, t); err != nil {
				return err
			}
			saved = t
			return nil
		})
		if err == nil {
			return saved, nil
		}
		if !stderrors.Is(err, ticket.ErrVersionConflict) {
			if !errors.IsAppError(err) {
				m.logger.Errorw("failed to update ticket", "ticket_id", number, "error", err)
			}
			return nil, err
		}
		m.logger.Warnw("ticket changed concurrently, retrying update", "ticket_id", number, "attempt", attempt)
	}
	return nil, errors.NewConflictError(fmt.Sprintf("ticket %s was modified concurrently, please retry", number))
}

func (m ticketMutator) summary(ctx context.Context, t *ticket.Ticket) (*dto.TicketSummaryDTO, error) {
	refs, err := m.refs.load(ctx, t)
	if err != nil {
		return nil, err
	}
	result := dto.ToTicketSummaryDTO(t, refs)
	return &result, nil
}
