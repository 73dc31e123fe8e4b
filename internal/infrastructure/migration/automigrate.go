package migration

import (
	"fmt"

	"gorm.io/gorm"

	"siloops/internal/infrastructure/persistence/models"
	"siloops/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model the schema covers.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CompanyModel{},
		&models.CompanySubscriptionModel{},
		&models.OperationModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema from the model structs.
// Suitable for development; production uses versioned SQL scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates the AutoMigrate strategy.
func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting AutoMigrate", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("AutoMigrate failed", "error", err)
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}

	s.logger.Infow("AutoMigrate completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
