package usecases

import (
	"context"
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

// loadTicket maps a missing ticket to NotFound and storage failures to an internal error.
func loadTicket(ctx context.Context, repo ticket.TicketRepository, log logger.Interface, ticketID uint) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		log.Errorw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, errors.NewInternalError("failed to get ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", ticketID))
	}
	return t, nil
}

// publishEvents runs after commit. Delivery failures never fail the operation.
func publishEvents(ctx context.Context, publisher events.EventPublisher, log logger.Interface, pending []events.DomainEvent) {
	if publisher == nil || len(pending) == 0 {
		return
	}
	if err := publisher.PublishAll(ctx, pending); err != nil {
		log.Warnw("failed to dispatch ticket events", "count", len(pending), "error", err)
	}
}

// asAppError keeps domain AppErrors and hides everything else behind an internal error.
func asAppError(err error, fallback string) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewInternalError(fallback)
}
