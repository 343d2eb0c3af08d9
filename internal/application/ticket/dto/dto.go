package dto

import (
	"time"

	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/shared/mapper"
)

type TicketDTO struct {
	ID                    uint      `json:"id"`
	ReferenceNumber       string    `json:"reference_number"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	Status                string    `json:"status"`
	CreatorID             uint      `json:"creator_id"`
	ZoneID                *uint     `json:"zone_id"`
	PhotoReference        *string   `json:"photo_reference"`
	RejectionReason       *string   `json:"rejection_reason"`
	AcknowledgedByCreator bool      `json:"acknowledged_by_creator"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type TicketListItemDTO struct {
	ID                    uint   `json:"id"`
	ReferenceNumber       string `json:"reference_number"`
	Title                 string `json:"title"`
	Status                string `json:"status"`
	CreatorID             uint   `json:"creator_id"`
	ZoneID                *uint  `json:"zone_id"`
	AcknowledgedByCreator bool   `json:"acknowledged_by_creator"`
	CreatedAt             string `json:"created_at"`
	UpdatedAt             string `json:"updated_at"`
}

type CommentDTO struct {
	ID                uint      `json:"id"`
	TicketID          uint      `json:"ticket_id"`
	AuthorID          uint      `json:"author_id"`
	AuthorDisplayName string    `json:"author_display_name"`
	Text              string    `json:"text"`
	HTML              string    `json:"html"`
	CreatedAt         time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:                    t.ID(),
		ReferenceNumber:       t.ReferenceNumber(),
		Title:                 t.Title(),
		Description:           t.Description(),
		Status:                t.Status().String(),
		CreatorID:             t.CreatorID(),
		ZoneID:                t.ZoneID(),
		PhotoReference:        t.PhotoReference(),
		RejectionReason:       t.RejectionReason(),
		AcknowledgedByCreator: t.AcknowledgedByCreator(),
		CreatedAt:             t.CreatedAt(),
		UpdatedAt:             t.UpdatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:                    t.ID(),
		ReferenceNumber:       t.ReferenceNumber(),
		Title:                 t.Title(),
		Status:                t.Status().String(),
		CreatorID:             t.CreatorID(),
		ZoneID:                t.ZoneID(),
		AcknowledgedByCreator: t.AcknowledgedByCreator(),
		CreatedAt:             t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:             t.UpdatedAt().Format(time.RFC3339),
	}
}

func ToTicketListItemDTOs(tickets []*ticket.Ticket) []TicketListItemDTO {
	return mapper.MapSlice(tickets, ToTicketListItemDTO)
}

// ToCommentDTO fills the author name and rendered HTML resolved by the caller.
func ToCommentDTO(c *ticket.Comment, authorDisplayName, html string) CommentDTO {
	return CommentDTO{
		ID:                c.ID(),
		TicketID:          c.TicketID(),
		AuthorID:          c.AuthorID(),
		AuthorDisplayName: authorDisplayName,
		Text:              c.Text(),
		HTML:              html,
		CreatedAt:         c.CreatedAt(),
	}
}
