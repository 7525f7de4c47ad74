package repositories

import (
	"context"

	"github.com/agro-riego/api/models"
	"gorm.io/gorm"
)

const alertOrder = "fecha_hora DESC, id DESC"

// AlertRepository handles database operations for alerts
type AlertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository instance
func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// FindAll retrieves all alerts, most recent first
func (r *AlertRepository) FindAll(ctx context.Context) ([]models.Alert, error) {
	return r.findWhere(ctx, nil)
}

// FindByID retrieves an alert by its ID with its sensor, tree and plot chains
func (r *AlertRepository) FindByID(ctx context.Context, id uint) (models.Alert, error) {
	var alert models.Alert
	result := withPreloads(ctx, r.db, alertPreloads).First(&alert, "id = ?", id)
	return alert, result.Error
}

// FindByType retrieves the alerts of a type
func (r *AlertRepository) FindByType(ctx context.Context, alertType string) ([]models.Alert, error) {
	return r.findWhere(ctx, map[string]interface{}{"tipo": alertType})
}

// FindBySeverity retrieves the alerts of a severity
func (r *AlertRepository) FindBySeverity(ctx context.Context, severity string) ([]models.Alert, error) {
	return r.findWhere(ctx, map[string]interface{}{"severidad": severity})
}

// FindByPlotID retrieves the alerts referencing a plot
func (r *AlertRepository) FindByPlotID(ctx context.Context, plotID uint) ([]models.Alert, error) {
	return r.findWhere(ctx, map[string]interface{}{"parcela_id": plotID})
}

// FindByTreeID retrieves the alerts referencing a tree
func (r *AlertRepository) FindByTreeID(ctx context.Context, treeID uint) ([]models.Alert, error) {
	return r.findWhere(ctx, map[string]interface{}{"arbol_id": treeID})
}

// FindByResolved retrieves the alerts whose resolved flag equals resolved
func (r *AlertRepository) FindByResolved(ctx context.Context, resolved bool) ([]models.Alert, error) {
	return r.findWhere(ctx, map[string]interface{}{"resuelta": resolved})
}

func (r *AlertRepository) findWhere(ctx context.Context, conds map[string]interface{}) ([]models.Alert, error) {
	var alerts []models.Alert
	query := withPreloads(ctx, r.db, alertPreloads)
	if len(conds) > 0 {
		query = query.Where(conds)
	}
	result := query.Order(alertOrder).Find(&alerts)
	return alerts, result.Error
}

// Create inserts a new alert into the database
func (r *AlertRepository) Create(ctx context.Context, alert models.Alert) (models.Alert, error) {
	result := r.db.WithContext(ctx).Create(&alert)
	return alert, result.Error
}

// Update applies the given column changes to an alert
func (r *AlertRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Alert{}).Where("id = ?", id).Updates(changes)
	return result.Error
}

// SetResolved updates the resolved flag of an alert
func (r *AlertRepository) SetResolved(ctx context.Context, id uint, resolved bool) error {
	result := r.db.WithContext(ctx).Model(&models.Alert{}).Where("id = ?", id).Update("resuelta", resolved)
	return result.Error
}

// Delete removes an alert from the database
func (r *AlertRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Alert{}, "id = ?", id)
	return result.Error
}

// Exists checks if an alert exists
func (r *AlertRepository) Exists(ctx context.Context, id uint) (bool, error) {
	count, err := countByID(ctx, r.db, &models.Alert{}, id)
	return count > 0, err
}
