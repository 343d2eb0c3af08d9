package mappers

import (
	"fmt"
	"time"

	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/ticket/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// UpdateColumns lists the mutable columns of t, with nil pointers mapped to NULL.
	UpdateColumns(t *ticket.Ticket) map[string]interface{}

	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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
		CreatedAt:             t.CreatedAt().UnixMilli(),
		UpdatedAt:             t.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
// Comments are loaded separately by the comment repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status := vo.TicketStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown ticket status %q (id=%d)", model.Status, model.ID)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.ReferenceNumber,
		model.Title,
		model.Description,
		status,
		model.CreatorID,
		model.ZoneID,
		model.PhotoReference,
		model.RejectionReason,
		model.AcknowledgedByCreator,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) UpdateColumns(t *ticket.Ticket) map[string]interface{} {
	return map[string]interface{}{
		"reference_number":        t.ReferenceNumber(),
		"title":                   t.Title(),
		"description":             t.Description(),
		"status":                  t.Status().String(),
		"zone_id":                 t.ZoneID(),
		"photo_reference":         t.PhotoReference(),
		"rejection_reason":        t.RejectionReason(),
		"acknowledged_by_creator": t.AcknowledgedByCreator(),
		"updated_at":              t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:               c.ID(),
		TicketID:         c.TicketID(),
		AuthorID:         c.AuthorID(),
		AuthorAccessCode: c.AuthorAccessCode(),
		Text:             c.Text(),
		CreatedAt:        c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.AuthorAccessCode,
		model.Text,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
