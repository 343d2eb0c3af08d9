package ticket

import (
	"time"

	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/ticket/valueobjects"
)

const (
	EventTypeStatusChanged = "ticket.status_changed"
	EventTypeFieldsEdited  = "ticket.fields_edited"
	EventTypeCommentAdded  = "ticket.comment_added"
)

// StatusChangedEvent is recorded when an admin moves a ticket to a different status.
type StatusChangedEvent struct {
	events.BaseEvent
	TicketID        uint
	CreatorID       uint
	ReferenceNumber string
	OldStatus       vo.TicketStatus
	NewStatus       vo.TicketStatus
	ChangedBy       uint
}

func NewStatusChangedEvent(t *Ticket, oldStatus vo.TicketStatus, changedBy uint, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:       events.NewBaseEvent(t.id, EventTypeStatusChanged, at),
		TicketID:        t.id,
		CreatorID:       t.creatorID,
		ReferenceNumber: t.referenceNumber,
		OldStatus:       oldStatus,
		NewStatus:       t.status,
		ChangedBy:       changedBy,
	}
}

// FieldsEditedEvent is recorded when an admin edit actually changes ticket details.
type FieldsEditedEvent struct {
	events.BaseEvent
	TicketID        uint
	CreatorID       uint
	ReferenceNumber string
	ChangedFields   []string
	EditedBy        uint
}

func NewFieldsEditedEvent(t *Ticket, changed []string, editedBy uint, at time.Time) FieldsEditedEvent {
	return FieldsEditedEvent{
		BaseEvent:       events.NewBaseEvent(t.id, EventTypeFieldsEdited, at),
		TicketID:        t.id,
		CreatorID:       t.creatorID,
		ReferenceNumber: t.referenceNumber,
		ChangedFields:   changed,
		EditedBy:        editedBy,
	}
}

// CommentAddedEvent is recorded when the administrator comments on a ticket.
type CommentAddedEvent struct {
	events.BaseEvent
	TicketID        uint
	CreatorID       uint
	ReferenceNumber string
	AuthorID        uint
}

func NewCommentAddedEvent(t *Ticket, authorID uint, at time.Time) CommentAddedEvent {
	return CommentAddedEvent{
		BaseEvent:       events.NewBaseEvent(t.id, EventTypeCommentAdded, at),
		TicketID:        t.id,
		CreatorID:       t.creatorID,
		ReferenceNumber: t.referenceNumber,
		AuthorID:        authorID,
	}
}
