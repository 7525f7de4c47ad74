package repositories

import (
	"context"

	"github.com/agro-riego/api/models"
	"gorm.io/gorm"
)

// WateringScheduleRepository handles database operations for watering schedules
type WateringScheduleRepository struct {
	db *gorm.DB
}

// NewWateringScheduleRepository creates a new watering schedule repository instance
func NewWateringScheduleRepository(db *gorm.DB) *WateringScheduleRepository {
	return &WateringScheduleRepository{db: db}
}

// FindAll retrieves all schedules with their plot
func (r *WateringScheduleRepository) FindAll(ctx context.Context) ([]models.WateringSchedule, error) {
	var schedules []models.WateringSchedule
	result := withPreloads(ctx, r.db, schedulePreloads).Order("id").Find(&schedules)
	return schedules, result.Error
}

// FindByID retrieves a schedule by its ID
func (r *WateringScheduleRepository) FindByID(ctx context.Context, id uint) (models.WateringSchedule, error) {
	var schedule models.WateringSchedule
	result := withPreloads(ctx, r.db, schedulePreloads).First(&schedule, "id = ?", id)
	return schedule, result.Error
}

// FindByPlotID retrieves all schedules of a plot
func (r *WateringScheduleRepository) FindByPlotID(ctx context.Context, plotID uint) ([]models.WateringSchedule, error) {
	var schedules []models.WateringSchedule
	result := withPreloads(ctx, r.db, schedulePreloads).Where("parcela_id = ?", plotID).Order("id").Find(&schedules)
	return schedules, result.Error
}

// FindByActive retrieves all schedules whose active flag equals active
func (r *WateringScheduleRepository) FindByActive(ctx context.Context, active bool) ([]models.WateringSchedule, error) {
	var schedules []models.WateringSchedule
	result := withPreloads(ctx, r.db, schedulePreloads).Where("activo = ?", active).Order("id").Find(&schedules)
	return schedules, result.Error
}

// Create inserts a new schedule into the database
func (r *WateringScheduleRepository) Create(ctx context.Context, schedule models.WateringSchedule) (models.WateringSchedule, error) {
	result := r.db.WithContext(ctx).Create(&schedule)
	return schedule, result.Error
}

// Update applies the given column changes to a schedule
func (r *WateringScheduleRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.WateringSchedule{}).Where("id = ?", id).Updates(changes)
	return result.Error
}

// SetActive updates the active flag of a schedule
func (r *WateringScheduleRepository) SetActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.WateringSchedule{}).Where("id = ?", id).Update("activo", active)
	return result.Error
}

// Delete removes a schedule from the database
func (r *WateringScheduleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.WateringSchedule{}, "id = ?", id)
	return result.Error
}

// Exists checks if a schedule exists
func (r *WateringScheduleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	count, err := countByID(ctx, r.db, &models.WateringSchedule{}, id)
	return count > 0, err
}
