package notification

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/notification/dto"
	"github.com/incidentdesk/incidentdesk/internal/application/notification/usecases"
	domainnotification "github.com/incidentdesk/incidentdesk/internal/domain/notification"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type Service struct {
	logger logger.Interface

	notify               *usecases.NotifyUseCase
	listNotifications    *usecases.ListNotificationsUseCase
	getUnreadCount       *usecases.GetUnreadCountUseCase
	markAllReadForTicket *usecases.MarkAllReadForTicketUseCase
	dispatcher           *Dispatcher
}

func NewService(
	repo domainnotification.NotificationRepository,
	cache usecases.UnreadCountCache,
	recorder DeliveryRecorder,
	logger logger.Interface,
) *Service {
	notify := usecases.NewNotifyUseCase(repo, cache, logger)
	return &Service{
		logger: logger,

		notify:               notify,
		listNotifications:    usecases.NewListNotificationsUseCase(repo, logger),
		getUnreadCount:       usecases.NewGetUnreadCountUseCase(repo, cache, logger),
		markAllReadForTicket: usecases.NewMarkAllReadForTicketUseCase(repo, cache, logger),
		dispatcher:           NewDispatcher(notify, recorder, logger),
	}
}

// Dispatcher returns the event handler that feeds this inbox.
func (s *Service) Dispatcher() *Dispatcher {
	return s.dispatcher
}

func (s *Service) Notify(ctx context.Context, cmd usecases.NotifyCommand) (*domainnotification.Notification, error) {
	return s.notify.Execute(ctx, cmd)
}

func (s *Service) ListNotifications(ctx context.Context, recipientID uint, limit, offset int) (*dto.ListNotificationsResponse, error) {
	return s.listNotifications.Execute(ctx, usecases.ListNotificationsQuery{
		RecipientID: recipientID,
		Limit:       limit,
		Offset:      offset,
	})
}

func (s *Service) UnreadCount(ctx context.Context, userID uint) (*dto.UnreadCountResponse, error) {
	return s.getUnreadCount.Execute(ctx, userID)
}

func (s *Service) MarkAllReadForTicket(ctx context.Context, recipientID, ticketID uint) error {
	_, err := s.markAllReadForTicket.Execute(ctx, recipientID, ticketID)
	return err
}
