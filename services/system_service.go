package services

import (
	"context"

	"github.com/agro-riego/api/database"
	"gorm.io/gorm"
)

// SystemService reports on the health and contents of the database
type SystemService struct {
	db *gorm.DB
}

// NewSystemService creates a new system service instance
func NewSystemService(db *gorm.DB) *SystemService {
	return &SystemService{db: db}
}

// Health pings the database and returns its version
func (s *SystemService) Health(ctx context.Context) (string, error) {
	if err := database.Ping(ctx, s.db); err != nil {
		return "", err
	}
	return database.ServerVersion(s.db.WithContext(ctx))
}

// Diagnostics collects table counts, domain statistics and a relationship sample
func (s *SystemService) Diagnostics(ctx context.Context) (*database.Diagnostics, error) {
	return database.RunDiagnostics(ctx, s.db)
}
