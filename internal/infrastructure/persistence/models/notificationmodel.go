package models

import (
	"time"

	"github.com/incidentdesk/incidentdesk/internal/shared/constants"
)

type NotificationModel struct {
	ID          uint      `gorm:"primaryKey"`
	RecipientID uint      `gorm:"not null;index:idx_notifications_recipient_ticket_read"`
	TicketID    uint      `gorm:"not null;index:idx_notifications_recipient_ticket_read"`
	Kind        string    `gorm:"size:20;not null"`
	Message     string    `gorm:"size:500;not null"`
	Read        bool      `gorm:"column:is_read;not null;default:false;index:idx_notifications_recipient_ticket_read"`
	CreatedAt   time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
