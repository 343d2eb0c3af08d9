package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, recipientID uint) (int64, error)
	// MarkAllReadForTicket flips every unread notification of recipientID on ticketID in one update.
	MarkAllReadForTicket(ctx context.Context, recipientID, ticketID uint) (int64, error)
	DeleteByRecipient(ctx context.Context, recipientID uint) (int64, error)
}
