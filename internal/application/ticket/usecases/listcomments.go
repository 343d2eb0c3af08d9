package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/services/markdown"
)

type ListCommentsQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	markdown    markdown.MarkdownService
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		markdown:    markdownService,
		logger:      logger,
	}
}

// Execute returns the thread oldest first. Authors whose user record is gone
// are labelled from the access code stored on the comment.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, query.TicketID)
	if err != nil {
		return nil, err
	}
	if !t.CanBeAccessedBy(query.Actor) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	comments, err := uc.commentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}

	names, err := uc.authorNames(ctx, comments)
	if err != nil {
		uc.logger.Errorw("failed to resolve comment authors", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}

	result := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		name, ok := names[c.AuthorID()]
		if !ok {
			name = c.FallbackAuthorLabel()
		}
		result = append(result, dto.ToCommentDTO(c, name, renderComment(uc.markdown, uc.logger, c)))
	}
	return result, nil
}

func (uc *ListCommentsUseCase) authorNames(ctx context.Context, comments []*ticket.Comment) (map[uint]string, error) {
	seen := make(map[uint]struct{}, len(comments))
	ids := make([]uint, 0, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.AuthorID()]; ok {
			continue
		}
		seen[c.AuthorID()] = struct{}{}
		ids = append(ids, c.AuthorID())
	}
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID()] = u.DisplayName()
	}
	return names, nil
}
