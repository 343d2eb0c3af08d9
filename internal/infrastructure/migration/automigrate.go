package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/incidentdesk/incidentdesk/internal/infrastructure/persistence/models"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Foreign keys are not created; use goose for production schemas.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{logger: log}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("running gorm auto migrate", "models_count", len(all))

	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
