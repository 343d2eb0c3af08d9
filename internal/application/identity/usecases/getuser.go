package usecases

import (
	"context"
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/application/identity/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", userID))
	}
	return dto.ToUserDTO(u), nil
}
