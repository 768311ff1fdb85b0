package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// GormAutoMigrateStrategy creates and widens tables from the gorm models.
// It is used for development and for drivers the SQL scripts do not cover.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: log.With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, toMigrate ...interface{}) error {
	if len(toMigrate) == 0 {
		toMigrate = models.All()
	}

	s.logger.Infow("starting gorm auto migration", "models_count", len(toMigrate))
	if err := db.AutoMigrate(toMigrate...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
