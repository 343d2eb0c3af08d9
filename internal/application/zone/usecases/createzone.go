package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/zone/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type CreateZoneCommand struct {
	Actor authorization.Actor
	Name  string
}

type CreateZoneResult struct {
	Zone    dto.ZoneDTO
	Created bool
}

type CreateZoneUseCase struct {
	zoneRepo zone.Repository
	logger   logger.Interface
}

func NewCreateZoneUseCase(zoneRepo zone.Repository, logger logger.Interface) *CreateZoneUseCase {
	return &CreateZoneUseCase{
		zoneRepo: zoneRepo,
		logger:   logger,
	}
}

// Execute returns the existing zone unchanged when the name is already registered.
func (uc *CreateZoneUseCase) Execute(ctx context.Context, cmd CreateZoneCommand) (*CreateZoneResult, error) {
	uc.logger.Infow("executing create zone use case", "name", cmd.Name)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only the administrator can manage zones")
	}

	z, created, err := ensureZone(ctx, uc.zoneRepo, cmd.Name)
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to create zone", "name", cmd.Name, "error", err)
			return nil, errors.NewInternalError("failed to create zone")
		}
		return nil, err
	}

	if created {
		uc.logger.Infow("zone created successfully", "zone_id", z.ID(), "name", z.Name())
	}
	return &CreateZoneResult{Zone: dto.ToZoneDTO(z), Created: created}, nil
}

// ensureZone creates name unless a zone already carries it. A concurrent insert
// losing the unique index race resolves to the winner's row.
func ensureZone(ctx context.Context, repo zone.Repository, name string) (*zone.Zone, bool, error) {
	z, err := zone.NewZone(name)
	if err != nil {
		return nil, false, err
	}

	existing, err := repo.GetByName(ctx, z.Name())
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	if err := repo.Create(ctx, z); err != nil {
		if errors.IsConflictError(err) {
			existing, getErr := repo.GetByName(ctx, z.Name())
			if getErr == nil && existing != nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}
	return z, true, nil
}
