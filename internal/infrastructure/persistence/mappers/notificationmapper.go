package mappers

import (
	"github.com/incidentdesk/incidentdesk/internal/domain/notification"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/notification/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
	ToDomainList(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:          n.ID(),
		RecipientID: n.RecipientID(),
		TicketID:    n.TicketID(),
		Kind:        n.Kind().String(),
		Message:     n.Message(),
		Read:        n.IsRead(),
		CreatedAt:   n.CreatedAt(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		model.RecipientID,
		model.TicketID,
		vo.NotificationKind(model.Kind),
		model.Message,
		model.Read,
		model.CreatedAt,
	)
}

func (m *NotificationMapperImpl) ToDomainList(models []*models.NotificationModel) ([]*notification.Notification, error) {
	result := make([]*notification.Notification, 0, len(models))
	for _, model := range models {
		n, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}
