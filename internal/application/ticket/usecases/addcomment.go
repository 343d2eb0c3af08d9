package usecases

import (
	"context"
	"strings"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/services/markdown"
)

type AddCommentCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Text     string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	markdown    markdown.MarkdownService
	txMgr       db.Transactor
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	markdownService markdown.MarkdownService,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		markdown:    markdownService,
		txMgr:       txMgr,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute checks the text first, then that the ticket exists, then access.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.Actor.UserID)

	if strings.TrimSpace(cmd.Text) == "" {
		return nil, errors.NewEmptyCommentError(cmd.Text)
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.Actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get comment author", "user_id", cmd.Actor.UserID, "error", err)
		return nil, errors.NewInternalError("failed to add comment")
	}
	if author == nil {
		return nil, errors.NewUnauthorizedError("user no longer exists")
	}

	var (
		t       *ticket.Ticket
		comment *ticket.Comment
	)
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = loadTicket(txCtx, uc.ticketRepo, uc.logger, cmd.TicketID)
		if err != nil {
			return err
		}

		comment, err = t.AddComment(cmd.Actor, author.AccessCode(), cmd.Text)
		if err != nil {
			return err
		}
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to add comment")
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err, "failed to add comment")
	}

	publishEvents(ctx, uc.publisher, uc.logger, t.PullEvents())

	uc.logger.Infow("comment added successfully", "ticket_id", cmd.TicketID, "comment_id", comment.ID())

	result := dto.ToCommentDTO(comment, author.DisplayName(), renderComment(uc.markdown, uc.logger, comment))
	return &result, nil
}

// renderComment falls back to no HTML when rendering fails; the raw text is always returned.
func renderComment(md markdown.MarkdownService, log logger.Interface, c *ticket.Comment) string {
	if md == nil {
		return ""
	}
	html, err := md.ToHTMLSanitized(c.Text())
	if err != nil {
		log.Warnw("failed to render comment", "comment_id", c.ID(), "error", err)
		return ""
	}
	return html
}
