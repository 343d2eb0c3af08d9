package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	readMarker ReadMarker
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	readMarker ReadMarker,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		readMarker: readMarker,
		logger:     logger,
	}
}

// Execute returns the ticket and, when the creator is reading it, clears
// their unread notifications for it.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeAccessedBy(query.Actor) {
		uc.logger.Warnw("ticket access denied", "ticket_id", query.TicketID, "user_id", query.Actor.UserID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	if t.IsCreator(query.Actor) && uc.readMarker != nil {
		if err := uc.readMarker.MarkAllReadForTicket(ctx, query.Actor.UserID, t.ID()); err != nil {
			uc.logger.Warnw("failed to mark notifications read",
				"ticket_id", t.ID(),
				"user_id", query.Actor.UserID,
				"error", err,
			)
		}
	}

	return dto.ToTicketDTO(t), nil
}
