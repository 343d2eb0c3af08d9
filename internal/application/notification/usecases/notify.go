package usecases

import (
	"context"
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/domain/notification"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/notification/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type NotifyCommand struct {
	RecipientID uint
	TicketID    uint
	Kind        vo.NotificationKind
	Message     string
}

type NotifyUseCase struct {
	repo   notification.NotificationRepository
	cache  UnreadCountCache
	logger logger.Interface
}

func NewNotifyUseCase(
	repo notification.NotificationRepository,
	cache UnreadCountCache,
	logger logger.Interface,
) *NotifyUseCase {
	return &NotifyUseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Execute appends an unread notification for the recipient.
func (uc *NotifyUseCase) Execute(ctx context.Context, cmd NotifyCommand) (*notification.Notification, error) {
	n, err := notification.NewNotification(cmd.RecipientID, cmd.TicketID, cmd.Kind, cmd.Message)
	if err != nil {
		return nil, fmt.Errorf("invalid notification: %w", err)
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to create notification",
			"recipient_id", cmd.RecipientID,
			"ticket_id", cmd.TicketID,
			"kind", cmd.Kind,
			"error", err,
		)
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, cmd.RecipientID); err != nil {
		uc.logger.Warnw("failed to invalidate unread count", "user_id", cmd.RecipientID, "error", err)
	}

	uc.logger.Infow("notification created",
		"notification_id", n.ID(),
		"recipient_id", cmd.RecipientID,
		"ticket_id", cmd.TicketID,
		"kind", cmd.Kind,
	)
	return n, nil
}
