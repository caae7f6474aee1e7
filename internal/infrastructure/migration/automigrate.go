package migration

import (
	"fmt"

	"gorm.io/gorm"

	"tradehub/internal/infrastructure/persistence/models"
	"tradehub/internal/shared/logger"
)

// AutoMigrateModels lists the tables this service owns.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ConversationModel{},
		&models.MessageModel{},
		&models.SupportTicketModel{},
		&models.SupportMessageModel{},
	}
}

// ProfileModels are the account tables read by the identity resolver. They
// are only migrated for local sqlite databases.
func ProfileModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CompanyModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.WithComponent("migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("running gorm auto migrate", "models_count", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
