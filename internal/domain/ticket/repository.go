package ticket

import (
	"context"
	"errors"

	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
)

// ErrVersionConflict is returned by Update when the stored ticket changed
// after it was loaded.
var ErrVersionConflict = errors.New("ticket was modified concurrently")

type TicketRepository interface {
	// Create persists a new ticket with its links and detail record.
	// Returns an error satisfying errors.IsDuplicateError when the number is taken.
	Create(ctx context.Context, ticket *Ticket) error
	// Update persists scalar fields, links and the detail record when the
	// stored version still matches the loaded one. A stale write returns
	// ErrVersionConflict and a deleted ticket a not found error.
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	// NumbersForYear returns every issued number under prefix for year.
	NumbersForYear(ctx context.Context, prefix string, year int) ([]string, error)
}

type TicketFilter struct {
	Status    *vo.TicketStatus
	ProjectID *uint
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *Attachment) error
	Delete(ctx context.Context, ticketID, attachmentID uint) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
}
