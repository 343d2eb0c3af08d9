package notification

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/incidentdesk/incidentdesk/internal/domain/notification/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/shared/biztime"
)

const maxMessageLength = 500

// Notification is a one-way message to a ticket's creator.
type Notification struct {
	id          uint
	recipientID uint
	ticketID    uint
	kind        vo.NotificationKind
	message     string
	read        bool
	createdAt   time.Time
}

func NewNotification(recipientID, ticketID uint, kind vo.NotificationKind, message string) (*Notification, error) {
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification kind: %s", kind)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	return &Notification{
		recipientID: recipientID,
		ticketID:    ticketID,
		kind:        kind,
		message:     message,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	recipientID uint,
	ticketID uint,
	kind vo.NotificationKind,
	message string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification kind: %s", kind)
	}

	return &Notification{
		id:          id,
		recipientID: recipientID,
		ticketID:    ticketID,
		kind:        kind,
		message:     message,
		read:        read,
		createdAt:   createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) RecipientID() uint {
	return n.recipientID
}

func (n *Notification) TicketID() uint {
	return n.ticketID
}

func (n *Notification) Kind() vo.NotificationKind {
	return n.kind
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}
