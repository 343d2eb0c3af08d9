package usecases

import (
	"context"
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/domain/notification"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	Actor  authorization.Actor
	UserID uint
}

type DeleteUserResult struct {
	Deleted              bool
	TicketsDeleted       int64
	CommentsDeleted      int64
	NotificationsDeleted int64
}

type DeleteUserUseCase struct {
	userRepo         user.Repository
	ticketRepo       ticket.TicketRepository
	commentRepo      ticket.CommentRepository
	notificationRepo notification.NotificationRepository
	photos           PhotoRemover
	unreadCache      UnreadCountInvalidator
	txMgr            db.Transactor
	logger           logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	notificationRepo notification.NotificationRepository,
	photos PhotoRemover,
	unreadCache UnreadCountInvalidator,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:         userRepo,
		ticketRepo:       ticketRepo,
		commentRepo:      commentRepo,
		notificationRepo: notificationRepo,
		photos:           photos,
		unreadCache:      unreadCache,
		txMgr:            txMgr,
		logger:           logger,
	}
}

// Execute removes a user together with their tickets, every comment on those
// tickets, the comments they wrote elsewhere and their notifications. The
// administrator cannot be removed; asking to is a no-op.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only the administrator can delete users")
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to delete user")
	}
	if target == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}
	if target.IsAdmin() {
		uc.logger.Warnw("refusing to delete the administrator", "user_id", cmd.UserID)
		return &DeleteUserResult{}, nil
	}

	result := &DeleteUserResult{}
	var photoKeys []string
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		onOwnTickets, err := uc.commentRepo.DeleteOnTicketsCreatedBy(txCtx, target.ID())
		if err != nil {
			return fmt.Errorf("delete comments on user tickets: %w", err)
		}
		authored, err := uc.commentRepo.DeleteByAuthor(txCtx, target.ID())
		if err != nil {
			return fmt.Errorf("delete authored comments: %w", err)
		}
		result.CommentsDeleted = onOwnTickets + authored

		if result.NotificationsDeleted, err = uc.notificationRepo.DeleteByRecipient(txCtx, target.ID()); err != nil {
			return fmt.Errorf("delete notifications: %w", err)
		}

		if photoKeys, err = uc.ticketRepo.ListPhotoReferencesByCreator(txCtx, target.ID()); err != nil {
			return fmt.Errorf("list photo references: %w", err)
		}
		if result.TicketsDeleted, err = uc.ticketRepo.DeleteByCreator(txCtx, target.ID()); err != nil {
			return fmt.Errorf("delete tickets: %w", err)
		}

		if err := uc.userRepo.Delete(txCtx, target.ID()); err != nil {
			return fmt.Errorf("delete user row: %w", err)
		}
		result.Deleted = true
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to delete user")
	}

	// Stored files and cached badges are outside the transaction.
	for _, key := range photoKeys {
		if err := uc.photos.Delete(ctx, key); err != nil {
			uc.logger.Warnw("failed to delete ticket photo", "key", key, "error", err)
		}
	}
	if uc.unreadCache != nil {
		if err := uc.unreadCache.Invalidate(ctx, target.ID()); err != nil {
			uc.logger.Warnw("failed to invalidate unread count", "user_id", target.ID(), "error", err)
		}
	}

	uc.logger.Infow("user deleted successfully",
		"user_id", target.ID(),
		"tickets", result.TicketsDeleted,
		"comments", result.CommentsDeleted,
		"notifications", result.NotificationsDeleted,
	)
	return result, nil
}
