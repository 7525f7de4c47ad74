package dto

import (
	"time"

	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/utils"
)

// CreateHistoryRequest is the structure for watering history creation requests
type CreateHistoryRequest struct {
	PlotID            utils.FlexInt    `json:"parcela_id" binding:"required,gt=0"`
	RecommendedLiters *utils.FlexFloat `json:"litros_recomendados" binding:"required"`
	AppliedLiters     *utils.FlexFloat `json:"litros_aplicados"`
	WateredAt         *utils.FlexTime  `json:"fecha_hora_riego"`
	Status            string           `json:"estado"`
}

// UpdateHistoryRequest is the structure for watering history update requests
type UpdateHistoryRequest struct {
	PlotID            *utils.FlexInt   `json:"parcela_id" binding:"omitempty,gt=0"`
	RecommendedLiters *utils.FlexFloat `json:"litros_recomendados"`
	AppliedLiters     *utils.FlexFloat `json:"litros_aplicados"`
	WateredAt         *utils.FlexTime  `json:"fecha_hora_riego"`
	Status            *string          `json:"estado"`
}

// HistorySummary is a history record without relations
type HistorySummary struct {
	ID                uint      `json:"id"`
	PlotID            uint      `json:"parcela_id"`
	RecommendedLiters float64   `json:"litros_recomendados"`
	AppliedLiters     *float64  `json:"litros_aplicados"`
	WateredAt         time.Time `json:"fecha_hora_riego"`
	Status            string    `json:"estado"`
}

// HistoryResponse is a history record with its plot
type HistoryResponse struct {
	HistorySummary
	Plot *PlotSummary `json:"parcela"`
}

// NewHistorySummary maps a history record to its scalar-only form
func NewHistorySummary(h models.WateringHistory) HistorySummary {
	return HistorySummary{
		ID:                h.ID,
		PlotID:            h.PlotID,
		RecommendedLiters: h.RecommendedLiters,
		AppliedLiters:     h.AppliedLiters,
		WateredAt:         h.WateredAt,
		Status:            h.Status,
	}
}

// NewHistoryResponse maps a history record and its plot
func NewHistoryResponse(h models.WateringHistory) HistoryResponse {
	return HistoryResponse{
		HistorySummary: NewHistorySummary(h),
		Plot:           plotSummaryPtr(h.Plot),
	}
}

// NewHistoryListResponse maps a list of history records
func NewHistoryListResponse(history []models.WateringHistory) []HistoryResponse {
	response := make([]HistoryResponse, 0, len(history))
	for _, h := range history {
		response = append(response, NewHistoryResponse(h))
	}
	return response
}
