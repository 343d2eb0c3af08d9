package usecases

import (
	"context"
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type EnsureDefaultZonesUseCase struct {
	zoneRepo zone.Repository
	logger   logger.Interface
}

func NewEnsureDefaultZonesUseCase(zoneRepo zone.Repository, logger logger.Interface) *EnsureDefaultZonesUseCase {
	return &EnsureDefaultZonesUseCase{
		zoneRepo: zoneRepo,
		logger:   logger,
	}
}

// Execute creates each named zone that is missing and returns how many were added.
func (uc *EnsureDefaultZonesUseCase) Execute(ctx context.Context, names []string) (int, error) {
	created := 0
	for _, name := range names {
		z, isNew, err := ensureZone(ctx, uc.zoneRepo, name)
		if err != nil {
			return created, fmt.Errorf("ensure zone %q: %w", name, err)
		}
		if isNew {
			created++
			uc.logger.Infow("default zone created", "zone_id", z.ID(), "name", z.Name())
		}
	}
	return created, nil
}
