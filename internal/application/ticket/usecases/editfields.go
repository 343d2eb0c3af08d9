package usecases

import (
	"context"
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

// EditFieldsCommand leaves nil fields untouched. ZoneSet with a nil ZoneID detaches the zone.
type EditFieldsCommand struct {
	Actor           authorization.Actor
	TicketID        uint
	Title           *string
	Description     *string
	ZoneSet         bool
	ZoneID          *uint
	ReferenceNumber *string
}

type EditFieldsResult struct {
	Ticket        *dto.TicketDTO
	ChangedFields []string
}

type EditFieldsUseCase struct {
	ticketRepo ticket.TicketRepository
	zoneRepo   zone.Repository
	txMgr      db.Transactor
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewEditFieldsUseCase(
	ticketRepo ticket.TicketRepository,
	zoneRepo zone.Repository,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *EditFieldsUseCase {
	return &EditFieldsUseCase{
		ticketRepo: ticketRepo,
		zoneRepo:   zoneRepo,
		txMgr:      txMgr,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *EditFieldsUseCase) Execute(ctx context.Context, cmd EditFieldsCommand) (*EditFieldsResult, error) {
	uc.logger.Infow("executing edit ticket fields use case", "ticket_id", cmd.TicketID)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only the administrator can edit tickets")
	}

	var (
		t       *ticket.Ticket
		changed []string
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = loadTicket(txCtx, uc.ticketRepo, uc.logger, cmd.TicketID)
		if err != nil {
			return err
		}

		if cmd.ZoneSet && cmd.ZoneID != nil {
			z, err := uc.zoneRepo.GetByID(txCtx, *cmd.ZoneID)
			if err != nil {
				uc.logger.Errorw("failed to get zone", "zone_id", *cmd.ZoneID, "error", err)
				return errors.NewInternalError("failed to get zone")
			}
			if z == nil {
				return errors.NewNotFoundError(fmt.Sprintf("zone %d not found", *cmd.ZoneID))
			}
		}

		changed, err = t.EditFields(cmd.Actor, ticket.FieldEdits{
			Title:           cmd.Title,
			Description:     cmd.Description,
			ZoneSet:         cmd.ZoneSet,
			ZoneID:          cmd.ZoneID,
			ReferenceNumber: cmd.ReferenceNumber,
		})
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			return nil
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to update ticket")
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err, "failed to edit ticket")
	}

	publishEvents(ctx, uc.publisher, uc.logger, t.PullEvents())

	uc.logger.Infow("ticket fields edited", "ticket_id", cmd.TicketID, "changed_fields", changed)

	if changed == nil {
		changed = []string{}
	}
	return &EditFieldsResult{Ticket: dto.ToTicketDTO(t), ChangedFields: changed}, nil
}
