package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/identity/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Actor       authorization.Actor
	DisplayName string
	AccessCode  string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	admin    user.AdminIdentity
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, admin user.AdminIdentity, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		admin:    admin,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "display_name", cmd.DisplayName)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only the administrator can create users")
	}

	u, err := user.NewUser(cmd.DisplayName, cmd.AccessCode, authorization.RoleUser)
	if err != nil {
		return nil, err
	}

	// The administrator's code is always taken, even before the admin row exists.
	if uc.admin.IsReservedCode(u.AccessCode()) {
		return nil, errors.NewDuplicateAccessCodeError(u.AccessCode())
	}

	exists, err := uc.userRepo.ExistsByAccessCode(ctx, u.AccessCode())
	if err != nil {
		uc.logger.Errorw("failed to check access code", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}
	if exists {
		return nil, errors.NewDuplicateAccessCodeError(u.AccessCode())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created successfully", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
