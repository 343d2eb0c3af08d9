package usecases

import (
	"context"
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/application/notification/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/notification"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	repo   notification.NotificationRepository
	cache  UnreadCountCache
	logger logger.Interface
}

func NewGetUnreadCountUseCase(
	repo notification.NotificationRepository,
	cache UnreadCountCache,
	logger logger.Interface,
) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, userID uint) (*dto.UnreadCountResponse, error) {
	count, ok, err := uc.cache.Get(ctx, userID)
	if err != nil {
		uc.logger.Warnw("unread count cache read failed", "user_id", userID, "error", err)
	}
	if ok {
		return &dto.UnreadCountResponse{Count: count}, nil
	}

	count, err = uc.repo.CountUnread(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get unread count", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get unread count: %w", err)
	}

	if err := uc.cache.Set(ctx, userID, count); err != nil {
		uc.logger.Warnw("unread count cache write failed", "user_id", userID, "error", err)
	}

	return &dto.UnreadCountResponse{Count: count}, nil
}
