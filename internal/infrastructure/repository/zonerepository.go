package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/persistence/mappers"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/persistence/models"
	"github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type ZoneRepository struct {
	db     *gorm.DB
	mapper mappers.ZoneMapper
	logger logger.Interface
}

func NewZoneRepository(db *gorm.DB, logger logger.Interface) zone.Repository {
	return &ZoneRepository{
		db:     db,
		mapper: mappers.NewZoneMapper(),
		logger: logger,
	}
}

func (r *ZoneRepository) Create(ctx context.Context, z *zone.Zone) error {
	model := r.mapper.ToModel(z)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("zone already exists", model.Name)
		}
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return z.SetID(model.ID)
}

func (r *ZoneRepository) GetByID(ctx context.Context, id uint) (*zone.Zone, error) {
	var model models.ZoneModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ZoneRepository) GetByName(ctx context.Context, name string) (*zone.Zone, error) {
	var model models.ZoneModel
	if err := db.GetTxFromContext(ctx, r.db).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zone by name: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// List returns all zones sorted by name.
func (r *ZoneRepository) List(ctx context.Context) ([]*zone.Zone, error) {
	var zoneModels []*models.ZoneModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&zoneModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	zones := make([]*zone.Zone, 0, len(zoneModels))
	for _, m := range zoneModels {
		z, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}

func (r *ZoneRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ZoneModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete zone: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("zone not found")
	}
	return nil
}
