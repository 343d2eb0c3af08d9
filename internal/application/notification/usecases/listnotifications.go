package usecases

import (
	"context"
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/application/notification/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/notification"
	"github.com/incidentdesk/incidentdesk/internal/shared/constants"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type ListNotificationsQuery struct {
	RecipientID uint
	Limit       int
	Offset      int
}

type ListNotificationsUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewListNotificationsUseCase(
	repo notification.NotificationRepository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute returns the recipient's inbox, newest first.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*dto.ListNotificationsResponse, error) {
	if query.Limit <= 0 {
		query.Limit = constants.DefaultPageSize
	}
	if query.Limit > constants.MaxPageSize {
		query.Limit = constants.MaxPageSize
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	items, total, err := uc.repo.ListByRecipient(ctx, query.RecipientID, query.Limit, query.Offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "recipient_id", query.RecipientID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &dto.ListNotificationsResponse{
		Notifications: dto.ToNotificationResponses(items),
		Total:         total,
		Limit:         query.Limit,
		Offset:        query.Offset,
	}, nil
}
