package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type DeleteZoneCommand struct {
	Actor  authorization.Actor
	ZoneID uint
}

type DeleteZoneResult struct {
	Deleted         bool
	DetachedTickets int64
}

type DeleteZoneUseCase struct {
	zoneRepo   zone.Repository
	ticketRepo ticket.TicketRepository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewDeleteZoneUseCase(
	zoneRepo zone.Repository,
	ticketRepo ticket.TicketRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteZoneUseCase {
	return &DeleteZoneUseCase{
		zoneRepo:   zoneRepo,
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// Execute detaches every ticket from the zone and removes it in one transaction.
// Deleting a zone that does not exist is a no-op.
func (uc *DeleteZoneUseCase) Execute(ctx context.Context, cmd DeleteZoneCommand) (*DeleteZoneResult, error) {
	uc.logger.Infow("executing delete zone use case", "zone_id", cmd.ZoneID)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only the administrator can manage zones")
	}

	result := &DeleteZoneResult{}
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		z, err := uc.zoneRepo.GetByID(txCtx, cmd.ZoneID)
		if err != nil {
			return err
		}
		if z == nil {
			return nil
		}

		detached, err := uc.ticketRepo.DetachZone(txCtx, z.ID())
		if err != nil {
			return err
		}
		if err := uc.zoneRepo.Delete(txCtx, z.ID()); err != nil {
			return err
		}
		result.Deleted = true
		result.DetachedTickets = detached
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete zone", "zone_id", cmd.ZoneID, "error", err)
		return nil, errors.NewInternalError("failed to delete zone")
	}

	if result.Deleted {
		uc.logger.Infow("zone deleted successfully", "zone_id", cmd.ZoneID, "detached_tickets", result.DetachedTickets)
	}
	return result, nil
}
