package dto

import (
	"time"

	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/utils"
)

// CreatePlotRequest is the structure for plot creation requests
type CreatePlotRequest struct {
	Name         string            `json:"nombre" binding:"required"`
	Location     string            `json:"ubicacion"`
	Rows         *utils.FlexInt    `json:"filas" binding:"required"`
	Columns      *utils.FlexInt    `json:"columnas" binding:"required"`
	PlantingDate utils.FlexTime    `json:"fecha_siembra" binding:"required"`
	CropID       *utils.FlexString `json:"cultivo_id"`
	SeasonID     *utils.FlexString `json:"epoca_id"`
}

// UpdatePlotRequest is the structure for plot update requests.
// Omitted fields are nil and left unchanged.
type UpdatePlotRequest struct {
	Name         *string           `json:"nombre"`
	Location     *string           `json:"ubicacion"`
	Rows         *utils.FlexInt    `json:"filas"`
	Columns      *utils.FlexInt    `json:"columnas"`
	PlantingDate *utils.FlexTime   `json:"fecha_siembra"`
	CropID       *utils.FlexString `json:"cultivo_id"`
	SeasonID     *utils.FlexString `json:"epoca_id"`
}

// PlotSummary is a plot without its collections, used when nested under a child
type PlotSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"nombre"`
	Location     string    `json:"ubicacion"`
	Rows         int       `json:"filas"`
	Columns      int       `json:"columnas"`
	PlantingDate time.Time `json:"fecha_siembra"`
	CropID       string    `json:"cultivo_id"`
	SeasonID     string    `json:"epoca_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PlotResponse is a plot with all of its collections. Collections are never null.
type PlotResponse struct {
	PlotSummary
	Trees     []TreeSummary     `json:"arboles"`
	Schedules []ScheduleSummary `json:"horariosRiego"`
	History   []HistorySummary  `json:"historialRiego"`
	Alerts    []AlertSummary    `json:"alertas"`
}

// NewPlotSummary maps a plot to its scalar-only form
func NewPlotSummary(p models.Plot) PlotSummary {
	return PlotSummary{
		ID:           p.ID,
		Name:         p.Name,
		Location:     p.Location,
		Rows:         p.Rows,
		Columns:      p.Columns,
		PlantingDate: p.PlantingDate,
		CropID:       p.CropID,
		SeasonID:     p.SeasonID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// plotSummaryPtr maps an optional plot reference
func plotSummaryPtr(p *models.Plot) *PlotSummary {
	if p == nil {
		return nil
	}
	s := NewPlotSummary(*p)
	return &s
}

// NewPlotResponse maps a plot and its loaded collections
func NewPlotResponse(p models.Plot) PlotResponse {
	response := PlotResponse{
		PlotSummary: NewPlotSummary(p),
		Trees:       make([]TreeSummary, 0, len(p.Trees)),
		Schedules:   make([]ScheduleSummary, 0, len(p.Schedules)),
		History:     make([]HistorySummary, 0, len(p.History)),
		Alerts:      make([]AlertSummary, 0, len(p.Alerts)),
	}
	for _, t := range p.Trees {
		response.Trees = append(response.Trees, NewTreeSummary(t))
	}
	for _, s := range p.Schedules {
		response.Schedules = append(response.Schedules, NewScheduleSummary(s))
	}
	for _, h := range p.History {
		response.History = append(response.History, NewHistorySummary(h))
	}
	for _, a := range p.Alerts {
		response.Alerts = append(response.Alerts, NewAlertSummary(a))
	}
	return response
}

// NewPlotListResponse maps a list of plots
func NewPlotListResponse(plots []models.Plot) []PlotResponse {
	response := make([]PlotResponse, 0, len(plots))
	for _, p := range plots {
		response = append(response, NewPlotResponse(p))
	}
	return response
}
