package repositories

import (
	"context"
	"time"

	"github.com/agro-riego/api/models"
	"gorm.io/gorm"
)

const historyOrder = "fecha_hora_riego DESC, id DESC"

// WateringHistoryRepository handles database operations for the watering history
type WateringHistoryRepository struct {
	db *gorm.DB
}

// NewWateringHistoryRepository creates a new watering history repository instance
func NewWateringHistoryRepository(db *gorm.DB) *WateringHistoryRepository {
	return &WateringHistoryRepository{db: db}
}

// FindAll retrieves the whole history, most recent first
func (r *WateringHistoryRepository) FindAll(ctx context.Context) ([]models.WateringHistory, error) {
	var history []models.WateringHistory
	result := withPreloads(ctx, r.db, historyPreloads).Order(historyOrder).Find(&history)
	return history, result.Error
}

// FindByID retrieves a history record by its ID
func (r *WateringHistoryRepository) FindByID(ctx context.Context, id uint) (models.WateringHistory, error) {
	var record models.WateringHistory
	result := withPreloads(ctx, r.db, historyPreloads).First(&record, "id = ?", id)
	return record, result.Error
}

// FindByPlotID retrieves the history of a plot, most recent first
func (r *WateringHistoryRepository) FindByPlotID(ctx context.Context, plotID uint) ([]models.WateringHistory, error) {
	var history []models.WateringHistory
	result := withPreloads(ctx, r.db, historyPreloads).Where("parcela_id = ?", plotID).Order(historyOrder).Find(&history)
	return history, result.Error
}

// FindByStatus retrieves the history records with a status, most recent first
func (r *WateringHistoryRepository) FindByStatus(ctx context.Context, status string) ([]models.WateringHistory, error) {
	var history []models.WateringHistory
	result := withPreloads(ctx, r.db, historyPreloads).Where("estado = ?", status).Order(historyOrder).Find(&history)
	return history, result.Error
}

// FindBetween retrieves the history records watered within [from, to], both bounds inclusive
func (r *WateringHistoryRepository) FindBetween(ctx context.Context, from, to time.Time) ([]models.WateringHistory, error) {
	var history []models.WateringHistory
	result := withPreloads(ctx, r.db, historyPreloads).
		Where("fecha_hora_riego >= ? AND fecha_hora_riego <= ?", from, to).
		Order(historyOrder).
		Find(&history)
	return history, result.Error
}

// Create inserts a new history record into the database
func (r *WateringHistoryRepository) Create(ctx context.Context, record models.WateringHistory) (models.WateringHistory, error) {
	result := r.db.WithContext(ctx).Create(&record)
	return record, result.Error
}

// Update applies the given column changes to a history record
func (r *WateringHistoryRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.WateringHistory{}).Where("id = ?", id).Updates(changes)
	return result.Error
}

// Delete removes a history record from the database
func (r *WateringHistoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.WateringHistory{}, "id = ?", id)
	return result.Error
}

// Exists checks if a history record exists
func (r *WateringHistoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	count, err := countByID(ctx, r.db, &models.WateringHistory{}, id)
	return count > 0, err
}
