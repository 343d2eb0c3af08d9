package dto

import (
	"time"

	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/shared/mapper"
)

type ZoneDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToZoneDTO(z *zone.Zone) ZoneDTO {
	return ZoneDTO{
		ID:        z.ID(),
		Name:      z.Name(),
		CreatedAt: z.CreatedAt(),
	}
}

func ToZoneDTOs(zones []*zone.Zone) []ZoneDTO {
	out := mapper.MapSlice(zones, ToZoneDTO)
	if out == nil {
		return []ZoneDTO{}
	}
	return out
}
