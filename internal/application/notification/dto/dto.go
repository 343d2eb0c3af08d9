package dto

import (
	"time"

	"github.com/incidentdesk/incidentdesk/internal/domain/notification"
	"github.com/incidentdesk/incidentdesk/internal/shared/mapper"
)

type NotificationResponse struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID(),
		TicketID:  n.TicketID(),
		Kind:      n.Kind().String(),
		Message:   n.Message(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func ToNotificationResponses(items []*notification.Notification) []NotificationResponse {
	out := mapper.MapSlice(items, ToNotificationResponse)
	if out == nil {
		return []NotificationResponse{}
	}
	return out
}
