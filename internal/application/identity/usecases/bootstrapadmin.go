package usecases

import (
	"context"
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type BootstrapAdminUseCase struct {
	userRepo user.Repository
	admin    user.AdminIdentity
	logger   logger.Interface
}

func NewBootstrapAdminUseCase(userRepo user.Repository, admin user.AdminIdentity, logger logger.Interface) *BootstrapAdminUseCase {
	return &BootstrapAdminUseCase{
		userRepo: userRepo,
		admin:    admin,
		logger:   logger,
	}
}

// Execute creates the administrator row if it is missing and reports whether it did.
func (uc *BootstrapAdminUseCase) Execute(ctx context.Context) (bool, error) {
	existing, err := uc.userRepo.GetByAccessCode(ctx, uc.admin.AccessCode())
	if err != nil {
		return false, fmt.Errorf("look up administrator: %w", err)
	}
	if existing != nil {
		if !existing.IsAdmin() {
			return false, fmt.Errorf("access code %s is held by non-admin user %d", uc.admin.AccessCode(), existing.ID())
		}
		return false, nil
	}

	admin, err := uc.admin.NewUser()
	if err != nil {
		return false, fmt.Errorf("build administrator: %w", err)
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		if errors.HasReason(err, errors.ReasonDuplicateAccessCode) {
			return false, nil
		}
		return false, fmt.Errorf("create administrator: %w", err)
	}

	uc.logger.Infow("administrator created", "user_id", admin.ID(), "display_name", admin.DisplayName())
	return true, nil
}
