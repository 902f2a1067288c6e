package email

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/ticket/usecases"
	"github.com/orris-inc/setracker/internal/shared/goroutine"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// OwnerNotifier mails new ticket owners in the background so SMTP latency
// never holds a request or its transaction.
type OwnerNotifier struct {
	service *SMTPEmailService
	logger  logger.Interface
	async   bool
}

// NewOwnerNotifier accepts a nil service; notifications are then logged and dropped.
func NewOwnerNotifier(service *SMTPEmailService, logger logger.Interface) *OwnerNotifier {
	return &OwnerNotifier{service: service, logger: logger, async: true}
}

func (n *OwnerNotifier) NotifyOwnerAssigned(ctx context.Context, notification usecases.OwnerAssignedNotification) error {
	if n.service == nil {
		n.logger.Debugw("email service not configured, skipping owner notification",
			"ticket_id", notification.TicketNumber,
			"to", notification.OwnerEmail,
		)
		return nil
	}

	msg := OwnerAssignedMessage{
		To:           notification.OwnerEmail,
		OwnerName:    notification.OwnerName,
		TicketNumber: notification.TicketNumber,
		Title:        notification.Title,
		TicketType:   notification.TicketType,
		Priority:     notification.Priority,
		ProjectName:  notification.ProjectName,
	}

	if !n.async {
		return n.service.SendOwnerAssignedEmail(msg)
	}

	goroutine.SafeGo(n.logger, "owner-notification", func() {
		if err := n.service.SendOwnerAssignedEmail(msg); err != nil {
			n.logger.Warnw("failed to send owner notification",
				"ticket_id", msg.TicketNumber,
				"to", msg.To,
				"error", err,
			)
			return
		}
		n.logger.Infow("owner notification sent", "ticket_id", msg.TicketNumber, "to", msg.To)
	})
	return nil
}
