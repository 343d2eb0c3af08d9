package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/ticket/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Actor           authorization.Actor
	TicketID        uint
	Status          string
	RejectionReason *string
}

type ChangeStatusResult struct {
	Ticket    *dto.TicketDTO
	OldStatus string
	Changed   bool
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      db.Transactor
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	newStatus, err := uc.validateCommand(cmd)
	if err != nil {
		uc.logger.Warnw("invalid change status command", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	var (
		t         *ticket.Ticket
		oldStatus vo.TicketStatus
		changed   bool
	)
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = loadTicket(txCtx, uc.ticketRepo, uc.logger, cmd.TicketID)
		if err != nil {
			return err
		}
		oldStatus = t.Status()

		changed, err = t.ChangeStatus(cmd.Actor, newStatus, cmd.RejectionReason)
		if err != nil {
			return err
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to update ticket")
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err, "failed to change ticket status")
	}

	publishEvents(ctx, uc.publisher, uc.logger, t.PullEvents())

	uc.logger.Infow("ticket status changed successfully",
		"ticket_id", cmd.TicketID,
		"old_status", oldStatus,
		"new_status", newStatus,
		"changed", changed,
	)

	return &ChangeStatusResult{
		Ticket:    dto.ToTicketDTO(t),
		OldStatus: oldStatus.String(),
		Changed:   changed,
	}, nil
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) (vo.TicketStatus, error) {
	if !cmd.Actor.IsAdmin() {
		return "", errors.NewForbiddenError("only the administrator can change ticket status")
	}
	if cmd.TicketID == 0 {
		return "", errors.NewValidationError("ticket ID is required")
	}
	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return "", errors.NewInvalidStatusError(cmd.Status)
	}
	return status, nil
}
