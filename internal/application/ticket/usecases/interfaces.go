package usecases

import (
	"context"
	"io"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type EditFieldsExecutor interface {
	Execute(ctx context.Context, cmd EditFieldsCommand) (*EditFieldsResult, error)
}

type AcknowledgeClosureExecutor interface {
	Execute(ctx context.Context, cmd AcknowledgeClosureCommand) (*AcknowledgeClosureResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error)
}

// PhotoStore keeps uploaded ticket photos.
type PhotoStore interface {
	Save(ctx context.Context, originalName, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

// ReadMarker clears a creator's unread notifications for one ticket.
type ReadMarker interface {
	MarkAllReadForTicket(ctx context.Context, recipientID, ticketID uint) error
}
