package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/identity/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

type ListUsersQuery struct {
	Actor    authorization.Actor
	Role     string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*dto.UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if !query.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only the administrator can list users")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter := user.ListFilter{Page: pagination.Page, PageSize: pagination.PageSize}
	if query.Role != "" {
		role := authorization.UserRole(query.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role", query.Role)
		}
		filter.Role = &role
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	return &ListUsersResult{
		Users:    dto.ToUserDTOs(users),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
