package repositories

import (
	"context"

	"github.com/agro-riego/api/models"
	"gorm.io/gorm"
)

// PlotRepository handles database operations for plots
type PlotRepository struct {
	db *gorm.DB
}

// NewPlotRepository creates a new plot repository instance
func NewPlotRepository(db *gorm.DB) *PlotRepository {
	return &PlotRepository{db: db}
}

// FindAll retrieves all plots with their trees, schedules, history and alerts
func (r *PlotRepository) FindAll(ctx context.Context) ([]models.Plot, error) {
	var plots []models.Plot
	result := withPreloads(ctx, r.db, plotPreloads).Order("id").Find(&plots)
	return plots, result.Error
}

// FindByID retrieves a plot by its ID
func (r *PlotRepository) FindByID(ctx context.Context, id uint) (models.Plot, error) {
	var plot models.Plot
	result := withPreloads(ctx, r.db, plotPreloads).First(&plot, "id = ?", id)
	return plot, result.Error
}

// FindByCropID retrieves all plots planted with a crop
func (r *PlotRepository) FindByCropID(ctx context.Context, cropID string) ([]models.Plot, error) {
	var plots []models.Plot
	result := withPreloads(ctx, r.db, plotPreloads).Where("cultivo_id = ?", cropID).Order("id").Find(&plots)
	return plots, result.Error
}

// FindBySeasonID retrieves all plots belonging to a season
func (r *PlotRepository) FindBySeasonID(ctx context.Context, seasonID string) ([]models.Plot, error) {
	var plots []models.Plot
	result := withPreloads(ctx, r.db, plotPreloads).Where("epoca_id = ?", seasonID).Order("id").Find(&plots)
	return plots, result.Error
}

// Create inserts a new plot into the database
func (r *PlotRepository) Create(ctx context.Context, plot models.Plot) (models.Plot, error) {
	result := r.db.WithContext(ctx).Create(&plot)
	return plot, result.Error
}

// Update applies the given column changes to a plot
func (r *PlotRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Plot{}).Where("id = ?", id).Updates(changes)
	return result.Error
}

// Delete removes a plot. Trees, schedules and history cascade; alerts keep a null plot reference.
func (r *PlotRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Plot{}, "id = ?", id)
	return result.Error
}

// Exists checks if a plot exists
func (r *PlotRepository) Exists(ctx context.Context, id uint) (bool, error) {
	count, err := countByID(ctx, r.db, &models.Plot{}, id)
	return count > 0, err
}
