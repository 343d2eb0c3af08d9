package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/persistence/mappers"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/persistence/models"
	"github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}
	return nil
}

// Update writes every mutable column, including NULLs for cleared zone and reason.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(r.mapper.UpdateColumns(t))

	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns tickets newest first.
func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ZoneID != nil {
		query = query.Where("zone_id = ?", *filter.ZoneID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []*models.TicketModel
	if err := query.
		Scopes(db.NewestFirst(), db.Paginate(filter.Page, filter.PageSize)).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, m := range ticketModels {
		t, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}

func (r *TicketRepository) DetachZone(ctx context.Context, zoneID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("zone_id = ?", zoneID).
		Update("zone_id", nil)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to detach zone from tickets: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepository) ListPhotoReferencesByCreator(ctx context.Context, creatorID uint) ([]string, error) {
	var refs []string
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("creator_id = ? AND photo_reference IS NOT NULL AND photo_reference <> ''", creatorID).
		Pluck("photo_reference", &refs).Error; err != nil {
		return nil, fmt.Errorf("failed to list photo references: %w", err)
	}
	return refs, nil
}

func (r *TicketRepository) DeleteByCreator(ctx context.Context, creatorID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("creator_id = ?", creatorID).
		Delete(&models.TicketModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete tickets: %w", result.Error)
	}
	return result.RowsAffected, nil
}

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewCommentRepository(db *gorm.DB, logger logger.Interface) ticket.CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create comment", "ticket_id", c.TicketID(), "error", err)
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []*models.CommentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Scopes(db.OldestFirst()).
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for _, m := range commentModels {
		c, err := r.mapper.CommentToDomain(m)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *CommentRepository) DeleteOnTicketsCreatedBy(ctx context.Context, creatorID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	sub := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.TicketModel{}).
		Select("id").
		Where("creator_id = ?", creatorID)

	result := tx.Where("ticket_id IN (?)", sub).Delete(&models.CommentModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete comments on user tickets: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CommentRepository) DeleteByAuthor(ctx context.Context, authorID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("author_id = ?", authorID).
		Delete(&models.CommentModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete comments by author: %w", result.Error)
	}
	return result.RowsAffected, nil
}
