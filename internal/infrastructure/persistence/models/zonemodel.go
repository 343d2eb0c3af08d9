package models

import (
	"time"

	"github.com/incidentdesk/incidentdesk/internal/shared/constants"
)

type ZoneModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex:idx_zones_name;not null;size:100"`
	CreatedAt time.Time
}

func (ZoneModel) TableName() string {
	return constants.TableZones
}
