package report

import "context"

// Repository loads the snapshot facts the report builders run over.
type Repository interface {
	// TicketsWorkedOnBy returns tickets owned by or assigned to userID.
	TicketsWorkedOnBy(ctx context.Context, userID uint) ([]TicketFact, error)
	TicketsForProject(ctx context.Context, projectID uint) ([]TicketFact, error)
	// AllTickets returns every ticket that references at least one technology.
	AllTickets(ctx context.Context) ([]TicketFact, error)
	Technologies(ctx context.Context) ([]TechnologyFact, error)
	Categories(ctx context.Context) ([]CategoryFact, error)
	TeamSize(ctx context.Context) (int, error)
}
