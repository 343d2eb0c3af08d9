package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/zone/dto"
	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type ListZonesUseCase struct {
	zoneRepo zone.Repository
	logger   logger.Interface
}

func NewListZonesUseCase(zoneRepo zone.Repository, logger logger.Interface) *ListZonesUseCase {
	return &ListZonesUseCase{
		zoneRepo: zoneRepo,
		logger:   logger,
	}
}

func (uc *ListZonesUseCase) Execute(ctx context.Context) ([]dto.ZoneDTO, error) {
	zones, err := uc.zoneRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list zones", "error", err)
		return nil, errors.NewInternalError("failed to list zones")
	}
	return dto.ToZoneDTOs(zones), nil
}
