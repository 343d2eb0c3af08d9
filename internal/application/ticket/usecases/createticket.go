package usecases

import (
	"context"
	"fmt"
	"io"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

// PhotoUpload is an optional picture sent along with a new ticket.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
	Size        int64
}

type CreateTicketCommand struct {
	Actor       authorization.Actor
	Title       string
	Description string
	ZoneID      *uint
	Photo       *PhotoUpload
}

type CreateTicketResult struct {
	Ticket *dto.TicketDTO
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	zoneRepo   zone.Repository
	allocator  ticket.ReferenceAllocator
	photos     PhotoStore
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	zoneRepo zone.Repository,
	allocator ticket.ReferenceAllocator,
	photos PhotoStore,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		zoneRepo:   zoneRepo,
		allocator:  allocator,
		photos:     photos,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "creator_id", cmd.Actor.UserID, "zone_id", cmd.ZoneID)

	t, err := ticket.NewTicket(cmd.Actor, cmd.Title, cmd.Description, cmd.ZoneID, nil)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "creator_id", cmd.Actor.UserID, "error", err)
		return nil, asAppError(err, "failed to create ticket")
	}

	if cmd.ZoneID != nil {
		if err := uc.ensureZoneExists(ctx, *cmd.ZoneID); err != nil {
			return nil, err
		}
	}

	photoKey := uc.storePhoto(ctx, cmd.Photo)
	if err := t.AttachPhoto(photoKey); err != nil {
		return nil, errors.NewInternalError("failed to attach photo")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return fmt.Errorf("save ticket: %w", err)
		}
		if err := t.AssignReference(uc.allocator); err != nil {
			return fmt.Errorf("assign reference: %w", err)
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("stamp reference: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to persist ticket", "creator_id", cmd.Actor.UserID, "error", err)
		uc.discardPhoto(ctx, photoKey)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", t.ID(),
		"reference_number", t.ReferenceNumber(),
		"creator_id", t.CreatorID(),
	)

	return &CreateTicketResult{Ticket: dto.ToTicketDTO(t)}, nil
}

func (uc *CreateTicketUseCase) ensureZoneExists(ctx context.Context, zoneID uint) error {
	z, err := uc.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		uc.logger.Errorw("failed to get zone", "zone_id", zoneID, "error", err)
		return errors.NewInternalError("failed to get zone")
	}
	if z == nil {
		return errors.NewNotFoundError(fmt.Sprintf("zone %d not found", zoneID))
	}
	return nil
}

// storePhoto returns an empty key when there is nothing to store or the upload fails.
func (uc *CreateTicketUseCase) storePhoto(ctx context.Context, photo *PhotoUpload) string {
	if photo == nil || photo.Body == nil || uc.photos == nil {
		return ""
	}
	key, err := uc.photos.Save(ctx, photo.FileName, photo.ContentType, photo.Body, photo.Size)
	if err != nil {
		uc.logger.Warnw("photo upload failed, creating ticket without photo", "file_name", photo.FileName, "error", err)
		return ""
	}
	return key
}

func (uc *CreateTicketUseCase) discardPhoto(ctx context.Context, key string) {
	if key == "" || uc.photos == nil {
		return
	}
	if err := uc.photos.Delete(ctx, key); err != nil {
		uc.logger.Warnw("failed to remove orphaned photo", "key", key, "error", err)
	}
}
