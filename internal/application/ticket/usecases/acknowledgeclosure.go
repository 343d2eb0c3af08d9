package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type AcknowledgeClosureCommand struct {
	Actor    authorization.Actor
	TicketID uint
}

type AcknowledgeClosureResult struct {
	Ticket       *dto.TicketDTO
	Acknowledged bool
}

type AcknowledgeClosureUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewAcknowledgeClosureUseCase(
	ticketRepo ticket.TicketRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *AcknowledgeClosureUseCase {
	return &AcknowledgeClosureUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// Execute never notifies anyone, whether or not the flag flips.
func (uc *AcknowledgeClosureUseCase) Execute(ctx context.Context, cmd AcknowledgeClosureCommand) (*AcknowledgeClosureResult, error) {
	uc.logger.Infow("executing acknowledge closure use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	var (
		t            *ticket.Ticket
		acknowledged bool
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = loadTicket(txCtx, uc.ticketRepo, uc.logger, cmd.TicketID)
		if err != nil {
			return err
		}

		acknowledged, err = t.Acknowledge(cmd.Actor)
		if err != nil {
			return err
		}
		if !acknowledged {
			return nil
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to update ticket")
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err, "failed to acknowledge ticket")
	}

	uc.logger.Infow("ticket closure acknowledged", "ticket_id", cmd.TicketID, "changed", acknowledged)

	return &AcknowledgeClosureResult{Ticket: dto.ToTicketDTO(t), Acknowledged: acknowledged}, nil
}
