package database

import (
	"fmt"

	"github.com/agro-riego/api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate migrates the database schema for every irrigation model
func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Migrating database schema...")
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("✅ Database schema migrated")
	return nil
}
