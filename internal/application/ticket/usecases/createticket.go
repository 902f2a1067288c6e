package usecases

import (
	"context"
	"fmt"

	commondto "github.com/orris-inc/setracker/internal/application/common/dto"
	"github.com/orris-inc/setracker/internal/application/ticket/dto"
	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/biztime"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// DefaultMaxIDRetries bounds how often a ticket number conflict is retried.
const DefaultMaxIDRetries = 3

type CreateTicketCommand struct {
	Title              string
	Description        string
	TicketType         string
	ProjectID          uint
	TechnologyIDs      []uint
	ReporterName       string
	ReporterContact    string
	ReporterDepartment string
	Priority           string
	BusinessImpact     string
	OwnerUsername      string
	AssignedUsernames  []string
	Detail             *dto.DetailDTO
	Caller             commondto.Caller
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	projectRepo  project.Repository
	techRepo     technology.Repository
	userRepo     user.Repository
	numbers      ticket.NumberGenerator
	txManager    TransactionRunner
	refs         *referenceLoader
	notifier     OwnerNotifier
	metrics      TicketMetrics
	clock        biztime.Clock
	maxIDRetries int
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
	numbers ticket.NumberGenerator,
	txManager TransactionRunner,
	notifier OwnerNotifier,
	metrics TicketMetrics,
	clock biztime.Clock,
	maxIDRetries int,
	logger logger.Interface,
) *CreateTicketUseCase {
	if maxIDRetries < 0 {
		maxIDRetries = DefaultMaxIDRetries
	}
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		projectRepo:  projectRepo,
		techRepo:     techRepo,
		userRepo:     userRepo,
		numbers:      numbers,
		txManager:    txManager,
		refs:         newReferenceLoader(projectRepo, techRepo, categoryRepo, userRepo),
		notifier:     notifier,
		metrics:      metrics,
		clock:        clock,
		maxIDRetries: maxIDRetries,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"title", cmd.Title,
		"project_id", cmd.ProjectID,
		"caller_id", cmd.Caller.UserID,
	)

	ticketType, err := vo.NewTicketType(cmd.TicketType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, ticketType, cmd.ProjectID, priority, ticket.Reporter{
		Name:       cmd.ReporterName,
		Contact:    cmd.ReporterContact,
		Department: cmd.ReporterDepartment,
		UserID:     cmd.Caller.UserIDPtr(),
	})
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	proj, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}
	if proj == nil {
		return nil, errors.NewValidationError(fmt.Sprintf("project %d not found", cmd.ProjectID))
	}

	if err := validateTechnologies(ctx, uc.techRepo, cmd.TechnologyIDs); err != nil {
		return nil, err
	}
	newTicket.SetTechnologies(cmd.TechnologyIDs)

	owner, err := uc.resolveOwner(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		ownerID := owner.ID()
		newTicket.AssignOwner(&ownerID)
	}

	assignees, err := resolveTeamMembers(ctx, uc.userRepo, cmd.AssignedUsernames)
	if err != nil {
		return nil, err
	}
	if len(assignees) > 0 {
		ids := make([]uint, 0, len(assignees))
		for _, u := range assignees {
			ids = append(ids, u.ID())
		}
		newTicket.SetAssignees(ids)
	}

	if cmd.BusinessImpact != "" {
		newTicket.SetBusinessImpact(cmd.BusinessImpact)
	}

	detail, err := cmd.Detail.ToDomainDetail(ticketType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := newTicket.SetDetail(detail); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.persistWithNumber(ctx, newTicket); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TicketCreated(ticketType.String())
	}

	uc.logger.Infow("ticket created successfully",
		"id", newTicket.ID(),
		"ticket_id", newTicket.Number(),
		"auto_assigned", owner != nil && cmd.OwnerUsername == "",
	)

	if owner != nil && owner.ID() != cmd.Caller.UserID {
		notifyOwner(ctx, uc.notifier, uc.logger, newTicket, proj.Name(), owner)
	}

	refs, err := uc.refs.load(ctx, newTicket)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(newTicket, refs, nil, ""), nil
}

// resolveOwner returns the explicit owner, or the caller when the caller is a
// team member and no owner was given.
func (uc *CreateTicketUseCase) resolveOwner(ctx context.Context, cmd CreateTicketCommand) (*user.User, error) {
	if cmd.OwnerUsername != "" {
		owners, err := resolveTeamMembers(ctx, uc.userRepo, []string{cmd.OwnerUsername})
		if err != nil {
			return nil, err
		}
		return owners[0], nil
	}

	if !cmd.Caller.IsAuthenticated() || !cmd.Caller.IsTeamMember {
		return nil, nil
	}

	caller, err := uc.userRepo.GetByID(ctx, cmd.Caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}
	if caller == nil || !caller.IsTeamMember() {
		return nil, nil
	}
	return caller, nil
}

// persistWithNumber assigns a fresh number and inserts the ticket in one
// transaction, retrying on a number conflict.
func (uc *CreateTicketUseCase) persistWithNumber(ctx context.Context, t *ticket.Ticket) error {
	year := biztime.YearOf(uc.clock.Now())

	for attempt := 0; attempt <= uc.maxIDRetries; attempt++ {
		err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			number, err := uc.numbers.Next(txCtx, year)
			if err != nil {
				return fmt.Errorf("failed to generate ticket number: %w", err)
			}
			if err := t.AssignNumber(number); err != nil {
				return err
			}
			return uc.ticketRepo.Create(txCtx, t)
		})
		if err == nil {
			return nil
		}

		t.ClearNumber()
		if !errors.IsDuplicateError(err) {
			uc.logger.Errorw("failed to save ticket", "error", err)
			return err
		}

		if uc.metrics != nil {
			uc.metrics.TicketNumberConflict()
		}
		uc.logger.Warnw("ticket number conflict, retrying", "attempt", attempt+1, "year", year, "error", err)
	}

	return errors.NewConflictError("could not allocate a unique ticket ID, please retry")
}

func notifyOwner(ctx context.Context, notifier OwnerNotifier, log logger.Interface, t *ticket.Ticket, projectName string, owner *user.User) {
	if notifier == nil || owner.Email() == nil {
		return
	}
	err := notifier.NotifyOwnerAssigned(ctx, OwnerAssignedNotification{
		TicketNumber: t.Number(),
		Title:        t.Title(),
		TicketType:   t.Type().Label(),
		Priority:     t.Priority().String(),
		ProjectName:  projectName,
		OwnerEmail:   owner.Email().String(),
		OwnerName:    owner.DisplayName(),
	})
	if err != nil {
		log.Warnw("failed to notify ticket owner", "ticket_id", t.Number(), "owner", owner.Username(), "error", err)
	}
}
