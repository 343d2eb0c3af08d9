package notification

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/notification/usecases"
	domainnotification "github.com/incidentdesk/incidentdesk/internal/domain/notification"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/notification/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

// DeliveryRecorder counts dispatched notifications.
type DeliveryRecorder interface {
	RecordNotification(kind string, delivered bool)
}

// EventSubscriber is the registration side of an event dispatcher.
type EventSubscriber interface {
	Subscribe(eventType string, handler events.EventHandler) error
}

// Dispatcher turns committed ticket events into notifications for the ticket's
// creator. It never fails the operation that produced the event.
type Dispatcher struct {
	notify   *usecases.NotifyUseCase
	recorder DeliveryRecorder
	logger   logger.Interface
}

func NewDispatcher(notify *usecases.NotifyUseCase, recorder DeliveryRecorder, logger logger.Interface) *Dispatcher {
	return &Dispatcher{
		notify:   notify,
		recorder: recorder,
		logger:   logger,
	}
}

var handledEventTypes = []string{
	ticket.EventTypeStatusChanged,
	ticket.EventTypeFieldsEdited,
	ticket.EventTypeCommentAdded,
}

// Register subscribes the dispatcher to every ticket event it understands.
func (d *Dispatcher) Register(sub EventSubscriber) error {
	for _, eventType := range handledEventTypes {
		if err := sub.Subscribe(eventType, d); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) CanHandle(eventType string) bool {
	for _, t := range handledEventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// Handle logs and swallows delivery failures.
func (d *Dispatcher) Handle(ctx context.Context, event events.DomainEvent) error {
	cmd, ok := toNotifyCommand(event)
	if !ok {
		d.logger.Warnw("ignoring unsupported event", "event_type", event.GetEventType())
		return nil
	}

	_, err := d.notify.Execute(ctx, cmd)
	if d.recorder != nil {
		d.recorder.RecordNotification(cmd.Kind.String(), err == nil)
	}
	if err != nil {
		d.logger.Errorw("notification dispatch failed",
			"event_type", event.GetEventType(),
			"ticket_id", cmd.TicketID,
			"recipient_id", cmd.RecipientID,
			"error", err,
		)
	}
	return nil
}

func toNotifyCommand(event events.DomainEvent) (usecases.NotifyCommand, bool) {
	switch e := event.(type) {
	case ticket.StatusChangedEvent:
		return usecases.NotifyCommand{
			RecipientID: e.CreatorID,
			TicketID:    e.TicketID,
			Kind:        vo.KindStatusChanged,
			Message:     domainnotification.StatusChangedMessage(e.ReferenceNumber, e.NewStatus.String()),
		}, true
	case ticket.FieldsEditedEvent:
		return usecases.NotifyCommand{
			RecipientID: e.CreatorID,
			TicketID:    e.TicketID,
			Kind:        vo.KindFieldsEdited,
			Message:     domainnotification.FieldsEditedMessage(e.ReferenceNumber),
		}, true
	case ticket.CommentAddedEvent:
		return usecases.NotifyCommand{
			RecipientID: e.CreatorID,
			TicketID:    e.TicketID,
			Kind:        vo.KindCommentAdded,
			Message:     domainnotification.CommentAddedMessage(e.ReferenceNumber),
		}, true
	default:
		return usecases.NotifyCommand{}, false
	}
}
