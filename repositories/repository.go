package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Eager-fetch shapes. Every read of an entity attaches exactly these relations.
var (
	plotPreloads     = []string{"Trees", "Schedules", "History", "Alerts"}
	treePreloads     = []string{"Plot", "Sensors", "Alerts"}
	sensorPreloads   = []string{"Tree.Plot", "Alerts"}
	schedulePreloads = []string{"Plot"}
	historyPreloads  = []string{"Plot"}
	alertPreloads    = []string{"Sensor.Tree.Plot", "Tree.Plot", "Plot"}
)

// withPreloads returns a session bound to ctx with the given relations attached
func withPreloads(ctx context.Context, db *gorm.DB, relations []string) *gorm.DB {
	tx := db.WithContext(ctx)
	for _, rel := range relations {
		tx = tx.Preload(rel)
	}
	return tx
}

// countByID counts rows of model with the given primary key
func countByID(ctx context.Context, db *gorm.DB, model interface{}, id uint) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	return count, err
}
