package mappers

import (
	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/persistence/models"
)

type ZoneMapper interface {
	ToModel(z *zone.Zone) *models.ZoneModel
	ToDomain(model *models.ZoneModel) (*zone.Zone, error)
}

type ZoneMapperImpl struct{}

func NewZoneMapper() ZoneMapper {
	return &ZoneMapperImpl{}
}

func (m *ZoneMapperImpl) ToModel(z *zone.Zone) *models.ZoneModel {
	return &models.ZoneModel{
		ID:        z.ID(),
		Name:      z.Name(),
		CreatedAt: z.CreatedAt(),
	}
}

func (m *ZoneMapperImpl) ToDomain(model *models.ZoneModel) (*zone.Zone, error) {
	return zone.ReconstructZone(model.ID, model.Name, model.CreatedAt)
}
