package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/db"
	apperrors "github.com/orris-inc/setracker/internal/shared/errors"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	return a.SetID(model.ID)
}

// Delete removes an attachment only when it belongs to ticketID.
func (r *AttachmentRepository) Delete(ctx context.Context, ticketID, attachmentID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND ticket_id = ?", attachmentID, ticketID).
		Delete(&models.AttachmentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("attachment %d not found", attachmentID))
	}
	return nil
}

func (r *AttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var modelList []models.AttachmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, len(modelList))
	for i := range modelList {
		attachments[i] = r.mapper.AttachmentToDomain(&modelList[i])
	}
	return attachments, nil
}
