package usecases

import (
	"context"
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/domain/notification"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type MarkAllReadForTicketUseCase struct {
	repo   notification.NotificationRepository
	cache  UnreadCountCache
	logger logger.Interface
}

func NewMarkAllReadForTicketUseCase(
	repo notification.NotificationRepository,
	cache UnreadCountCache,
	logger logger.Interface,
) *MarkAllReadForTicketUseCase {
	return &MarkAllReadForTicketUseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Execute flips every unread notification of the recipient on the ticket in one update.
func (uc *MarkAllReadForTicketUseCase) Execute(ctx context.Context, recipientID, ticketID uint) (int64, error) {
	affected, err := uc.repo.MarkAllReadForTicket(ctx, recipientID, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to mark notifications as read",
			"recipient_id", recipientID,
			"ticket_id", ticketID,
			"error", err,
		)
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	if affected > 0 {
		if err := uc.cache.Invalidate(ctx, recipientID); err != nil {
			uc.logger.Warnw("failed to invalidate unread count", "user_id", recipientID, "error", err)
		}
		uc.logger.Infow("notifications marked as read",
			"recipient_id", recipientID,
			"ticket_id", ticketID,
			"count", affected,
		)
	}
	return affected, nil
}
