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

type GetTicketQuery struct {
	TicketID string
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	refs           *referenceLoader
	markdown       MarkdownRenderer
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	projectRepo project.Repository,
	techRepo technology.Repository,
	categoryRepo technology.CategoryRepository,
	userRepo user.Repository,
	markdown MarkdownRenderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		refs:           newReferenceLoader(projectRepo, techRepo, categoryRepo, userRepo),
		markdown:       markdown,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := getTicketByNumber(ctx, uc.ticketRepo, query.TicketID)
	if err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	refs, err := uc.refs.load(ctx, t)
	if err != nil {
		return nil, err
	}

	html := ""
	if uc.markdown != nil {
		html, err = uc.markdown.Render(t.Description())
		if err != nil {
			uc.logger.Warnw("failed to render ticket description", "ticket_id", query.TicketID, "error", err)
			html = ""
		}
	}

	return dto.ToTicketDTO(t, refs, attachments, html), nil
}
