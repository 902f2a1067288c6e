package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/ticket/dto"
)

// TransactionRunner runs fn inside a database transaction carried by ctx.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OwnerAssignedNotification is sent to a team member who became a ticket owner.
type OwnerAssignedNotification struct {
	TicketNumber string
	Title        string
	TicketType   string
	Priority     string
	ProjectName  string
	OwnerEmail   string
	OwnerName    string
}

// OwnerNotifier delivers owner notifications. Delivery is best effort.
type OwnerNotifier interface {
	NotifyOwnerAssigned(ctx context.Context, n OwnerAssignedNotification) error
}

// TicketMetrics records ticket lifecycle counters.
type TicketMetrics interface {
	TicketCreated(ticketType string)
	TicketNumberConflict()
}

type MarkdownRenderer interface {
	Render(src string) (string, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*dto.TicketSummaryDTO, error)
}

type UpdateTicketPriorityExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketPriorityCommand) (*dto.TicketSummaryDTO, error)
}

type UpdateTicketOwnerExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketOwnerCommand) (*dto.TicketSummaryDTO, error)
}

type UpdateTicketAssignmentExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketAssignmentCommand) (*dto.TicketSummaryDTO, error)
}

type UpdateTicketTechnologiesExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketTechnologiesCommand) (*dto.TicketSummaryDTO, error)
}

type SetTicketDetailExecutor interface {
	Execute(ctx context.Context, cmd SetTicketDetailCommand) (*dto.TicketDTO, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error)
}

type RemoveAttachmentExecutor interface {
	Execute(ctx context.Context, cmd RemoveAttachmentCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketSummaryDTO, error)
}
