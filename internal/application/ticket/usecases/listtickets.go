package usecases

import (
	"context"
	"strings"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/ticket/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Actor    authorization.Actor
	Status   string
	ZoneID   *uint
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute lists every ticket for the administrator and only their own for users.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		ZoneID:   query.ZoneID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if !query.Actor.IsAdmin() {
		creatorID := query.Actor.UserID
		filter.CreatorID = &creatorID
	}
	if strings.TrimSpace(query.Status) != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewInvalidStatusError(query.Status)
		}
		filter.Status = &status
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.Actor.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	items := dto.ToTicketListItemDTOs(tickets)
	if items == nil {
		items = []dto.TicketListItemDTO{}
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
