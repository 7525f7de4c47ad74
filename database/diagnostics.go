package database

import (
	"context"
	"fmt"

	"github.com/agro-riego/api/models"
	"gorm.io/gorm"
)

// TableCounts holds the number of rows per irrigation table
type TableCounts struct {
	Plots     int64 `json:"parcelas"`
	Trees     int64 `json:"arboles"`
	Sensors   int64 `json:"sensores"`
	Schedules int64 `json:"horariosRiego"`
	History   int64 `json:"historialRiego"`
	Alerts    int64 `json:"alertas"`
}

// Statistics summarises the state of the irrigation domain
type Statistics struct {
	PlotsWithTrees    int64 `json:"parcelasConArboles"`
	PlotsWithoutTrees int64 `json:"parcelasSinArboles"`
	HealthyTrees      int64 `json:"arbolesSaludables"`
	HumiditySensors   int64 `json:"sensoresHumedad"`
	ActiveSchedules   int64 `json:"horariosActivos"`
	UnresolvedAlerts  int64 `json:"alertasNoResueltas"`
}

// PlotRelations counts the rows owned by or pointing at a plot
type PlotRelations struct {
	ID        uint   `json:"id"`
	Name      string `json:"nombre"`
	Trees     int64  `json:"arboles"`
	Schedules int64  `json:"horariosRiego"`
	History   int64  `json:"historialRiego"`
	Alerts    int64  `json:"alertas"`
}

// TreeRelations counts the sensors and alerts of a tree
type TreeRelations struct {
	ID       uint   `json:"id"`
	PlotName string `json:"parcela"`
	Sensors  int64  `json:"sensores"`
	Alerts   int64  `json:"alertas"`
}

// Relationships samples the first plots and trees with their related row counts
type Relationships struct {
	Plots []PlotRelations `json:"parcelas"`
	Trees []TreeRelations `json:"arboles"`
}

// Diagnostics is a point-in-time report of the database
type Diagnostics struct {
	Tables        []string      `json:"tablas"`
	Counts        TableCounts   `json:"registros"`
	Statistics    Statistics    `json:"estadisticas"`
	Relationships Relationships `json:"relaciones"`
}

const (
	healthyTreeStatus  = "Saludable"
	humiditySensorType = "Humedad"

	relationshipSample = 5
)

// RunDiagnostics collects the table list, row counts, domain statistics and
// a relationship sample. Queries run sequentially; the first failure aborts the report.
func RunDiagnostics(ctx context.Context, db *gorm.DB) (*Diagnostics, error) {
	db = db.WithContext(ctx)
	report := &Diagnostics{}

	tables, err := db.Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	report.Tables = tables

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Plot{}, &report.Counts.Plots},
		{&models.Tree{}, &report.Counts.Trees},
		{&models.Sensor{}, &report.Counts.Sensors},
		{&models.WateringSchedule{}, &report.Counts.Schedules},
		{&models.WateringHistory{}, &report.Counts.History},
		{&models.Alert{}, &report.Counts.Alerts},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count rows: %w", err)
		}
	}

	stats := &report.Statistics
	if err := db.Model(&models.Plot{}).
		Where("EXISTS (SELECT 1 FROM arboles WHERE arboles.parcela_id = parcelas.id)").
		Count(&stats.PlotsWithTrees).Error; err != nil {
		return nil, fmt.Errorf("failed to count plots with trees: %w", err)
	}
	stats.PlotsWithoutTrees = report.Counts.Plots - stats.PlotsWithTrees

	if err := db.Model(&models.Tree{}).Where("estado = ?", healthyTreeStatus).Count(&stats.HealthyTrees).Error; err != nil {
		return nil, fmt.Errorf("failed to count healthy trees: %w", err)
	}
	if err := db.Model(&models.Sensor{}).Where("tipo = ?", humiditySensorType).Count(&stats.HumiditySensors).Error; err != nil {
		return nil, fmt.Errorf("failed to count humidity sensors: %w", err)
	}
	if err := db.Model(&models.WateringSchedule{}).Where("activo = ?", true).Count(&stats.ActiveSchedules).Error; err != nil {
		return nil, fmt.Errorf("failed to count active schedules: %w", err)
	}
	if err := db.Model(&models.Alert{}).Where("resuelta = ?", false).Count(&stats.UnresolvedAlerts).Error; err != nil {
		return nil, fmt.Errorf("failed to count unresolved alerts: %w", err)
	}

	relationships, err := sampleRelationships(db)
	if err != nil {
		return nil, err
	}
	report.Relationships = *relationships

	return report, nil
}

// sampleRelationships counts the related rows of the first plots and trees by id
func sampleRelationships(db *gorm.DB) (*Relationships, error) {
	rel := &Relationships{
		Plots: []PlotRelations{},
		Trees: []TreeRelations{},
	}

	if err := db.Model(&models.Plot{}).
		Select(`parcelas.id, parcelas.nombre AS name,
			(SELECT COUNT(*) FROM arboles WHERE arboles.parcela_id = parcelas.id) AS trees,
			(SELECT COUNT(*) FROM horarios_riego WHERE horarios_riego.parcela_id = parcelas.id) AS schedules,
			(SELECT COUNT(*) FROM historial_riego WHERE historial_riego.parcela_id = parcelas.id) AS history,
			(SELECT COUNT(*) FROM alertas WHERE alertas.parcela_id = parcelas.id) AS alerts`).
		Order("parcelas.id").
		Limit(relationshipSample).
		Scan(&rel.Plots).Error; err != nil {
		return nil, fmt.Errorf("failed to sample plot relationships: %w", err)
	}

	if err := db.Model(&models.Tree{}).
		Select(`arboles.id, parcelas.nombre AS plot_name,
			(SELECT COUNT(*) FROM sensores WHERE sensores.arbol_id = arboles.id) AS sensors,
			(SELECT COUNT(*) FROM alertas WHERE alertas.arbol_id = arboles.id) AS alerts`).
		Joins("JOIN parcelas ON parcelas.id = arboles.parcela_id").
		Order("arboles.id").
		Limit(relationshipSample).
		Scan(&rel.Trees).Error; err != nil {
		return nil, fmt.Errorf("failed to sample tree relationships: %w", err)
	}

	return rel, nil
}
