package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/ticket/dto"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type AddAttachmentCommand struct {
	TicketID     string
	FileRef      string
	OriginalName string
}

type AddAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	uc.logger.Infow("executing add attachment use case", "ticket_id", cmd.TicketID, "file", cmd.FileRef)

	t, err := getTicketByNumber(ctx, uc.ticketRepo, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	attachment, err := ticket.NewAttachment(t.ID(), cmd.FileRef, cmd.OriginalName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Create(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	result := dto.ToAttachmentDTO(attachment)
	return &result, nil
}

type RemoveAttachmentCommand struct {
	TicketID     string
	AttachmentID uint
}

type RemoveAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewRemoveAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *RemoveAttachmentUseCase {
	return &RemoveAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *RemoveAttachmentUseCase) Execute(ctx context.Context, cmd RemoveAttachmentCommand) error {
	uc.logger.Infow("executing remove attachment use case", "ticket_id", cmd.TicketID, "attachment_id", cmd.AttachmentID)

	if cmd.AttachmentID == 0 {
		return errors.NewValidationError("attachment ID is required")
	}

	t, err := getTicketByNumber(ctx, uc.ticketRepo, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := uc.attachmentRepo.Delete(ctx, t.ID(), cmd.AttachmentID); err != nil {
		uc.logger.Errorw("failed to delete attachment", "ticket_id", cmd.TicketID, "attachment_id", cmd.AttachmentID, "error", err)
		return err
	}
	return nil
}
