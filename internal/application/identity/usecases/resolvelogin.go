package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/user/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type ResolveLoginCommand struct {
	DisplayName string
	AccessCode  string
}

type ResolveLoginResult struct {
	User *user.User
}

type ResolveLoginUseCase struct {
	userRepo user.Repository
	admin    user.AdminIdentity
	logger   logger.Interface
}

func NewResolveLoginUseCase(userRepo user.Repository, admin user.AdminIdentity, logger logger.Interface) *ResolveLoginUseCase {
	return &ResolveLoginUseCase{
		userRepo: userRepo,
		admin:    admin,
		logger:   logger,
	}
}

// Execute maps a display name and access code to a directory entry. The admin
// name is matched under case folding, user names exactly. Every mismatch looks
// the same to the caller.
func (uc *ResolveLoginUseCase) Execute(ctx context.Context, cmd ResolveLoginCommand) (*ResolveLoginResult, error) {
	if uc.admin.IsReservedCode(cmd.AccessCode) {
		return uc.resolveAdmin(ctx, cmd)
	}

	if _, err := vo.NewAccessCode(cmd.AccessCode); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	u, err := uc.userRepo.GetByAccessCode(ctx, cmd.AccessCode)
	if err != nil {
		uc.logger.Errorw("failed to get user by access code", "error", err)
		return nil, errors.NewInternalError("failed to resolve login")
	}
	if u == nil || u.IsAdmin() || !u.Authenticates(cmd.DisplayName) {
		return nil, errors.NewInvalidCredentialsError()
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())
	return &ResolveLoginResult{User: u}, nil
}

func (uc *ResolveLoginUseCase) resolveAdmin(ctx context.Context, cmd ResolveLoginCommand) (*ResolveLoginResult, error) {
	if !uc.admin.Authenticates(cmd.DisplayName) {
		return nil, errors.NewInvalidCredentialsError()
	}

	u, err := uc.userRepo.GetByAccessCode(ctx, uc.admin.AccessCode())
	if err != nil {
		uc.logger.Errorw("failed to load administrator", "error", err)
		return nil, errors.NewInternalError("failed to resolve login")
	}
	if u == nil || !u.IsAdmin() {
		uc.logger.Errorw("administrator record missing; run the seed command")
		return nil, errors.NewInvalidCredentialsError()
	}

	uc.logger.Infow("administrator logged in", "user_id", u.ID())
	return &ResolveLoginResult{User: u}, nil
}
