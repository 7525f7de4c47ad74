package repositories

import (
	"context"

	"github.com/agro-riego/api/models"
	"gorm.io/gorm"
)

// SensorRepository handles database operations for sensors
type SensorRepository struct {
	db *gorm.DB
}

// NewSensorRepository creates a new sensor repository instance
func NewSensorRepository(db *gorm.DB) *SensorRepository {
	return &SensorRepository{db: db}
}

// FindAll retrieves all sensors with their tree (and its plot) and alerts
func (r *SensorRepository) FindAll(ctx context.Context) ([]models.Sensor, error) {
	var sensors []models.Sensor
	result := withPreloads(ctx, r.db, sensorPreloads).Order("id").Find(&sensors)
	return sensors, result.Error
}

// FindByID retrieves a sensor by its ID
func (r *SensorRepository) FindByID(ctx context.Context, id uint) (models.Sensor, error) {
	var sensor models.Sensor
	result := withPreloads(ctx, r.db, sensorPreloads).First(&sensor, "id = ?", id)
	return sensor, result.Error
}

// FindByTreeID retrieves all sensors attached to a tree
func (r *SensorRepository) FindByTreeID(ctx context.Context, treeID uint) ([]models.Sensor, error) {
	var sensors []models.Sensor
	result := withPreloads(ctx, r.db, sensorPreloads).Where("arbol_id = ?", treeID).Order("id").Find(&sensors)
	return sensors, result.Error
}

// FindByType retrieves all sensors of a type
func (r *SensorRepository) FindByType(ctx context.Context, sensorType string) ([]models.Sensor, error) {
	var sensors []models.Sensor
	result := withPreloads(ctx, r.db, sensorPreloads).Where("tipo = ?", sensorType).Order("id").Find(&sensors)
	return sensors, result.Error
}

// Create inserts a new sensor into the database
func (r *SensorRepository) Create(ctx context.Context, sensor models.Sensor) (models.Sensor, error) {
	result := r.db.WithContext(ctx).Create(&sensor)
	return sensor, result.Error
}

// Update applies the given column changes to a sensor
func (r *SensorRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Sensor{}).Where("id = ?", id).Updates(changes)
	return result.Error
}

// Delete removes a sensor; its alerts keep a null sensor reference
func (r *SensorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Sensor{}, "id = ?", id)
	return result.Error
}

// Exists checks if a sensor exists
func (r *SensorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	count, err := countByID(ctx, r.db, &models.Sensor{}, id)
	return count > 0, err
}
