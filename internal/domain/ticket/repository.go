package ticket

import (
	"context"

	vo "github.com/incidentdesk/incidentdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// GetByID returns nil, nil when the ticket does not exist.
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	// DetachZone clears the zone of every ticket tagged with zoneID.
	DetachZone(ctx context.Context, zoneID uint) (int64, error)
	// ListPhotoReferencesByCreator returns the non-empty photo references of a user's tickets.
	ListPhotoReferencesByCreator(ctx context.Context, creatorID uint) ([]string, error)
	DeleteByCreator(ctx context.Context, creatorID uint) (int64, error)
}

type TicketFilter struct {
	CreatorID *uint
	Status    *vo.TicketStatus
	ZoneID    *uint
	Page      int
	PageSize  int
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// ListByTicketID returns the thread oldest first.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	// DeleteOnTicketsCreatedBy removes every comment on tickets opened by creatorID.
	DeleteOnTicketsCreatedBy(ctx context.Context, creatorID uint) (int64, error)
	DeleteByAuthor(ctx context.Context, authorID uint) (int64, error)
}
