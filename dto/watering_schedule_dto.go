package dto

import (
	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/utils"
)

// CreateScheduleRequest is the structure for watering schedule creation requests
type CreateScheduleRequest struct {
	PlotID     utils.FlexInt   `json:"parcela_id" binding:"required,gt=0"`
	DaysOfWeek []string        `json:"dias_semana"`
	TimeOfDay  string          `json:"hora_riego"`
	Active     *utils.FlexBool `json:"activo"`
}

// UpdateScheduleRequest is the structure for watering schedule update requests
type UpdateScheduleRequest struct {
	PlotID     *utils.FlexInt  `json:"parcela_id" binding:"omitempty,gt=0"`
	DaysOfWeek []string        `json:"dias_semana"`
	TimeOfDay  *string         `json:"hora_riego"`
	Active     *utils.FlexBool `json:"activo"`
}

// ToggleScheduleRequest is the body of PATCH /horarios/:id/toggle
type ToggleScheduleRequest struct {
	Active *utils.FlexBool `json:"activo" binding:"required"`
}

// ScheduleSummary is a watering schedule without relations
type ScheduleSummary struct {
	ID         uint     `json:"id"`
	PlotID     uint     `json:"parcela_id"`
	DaysOfWeek []string `json:"dias_semana"`
	TimeOfDay  string   `json:"hora_riego"`
	Active     bool     `json:"activo"`
}

// ScheduleResponse is a watering schedule with its plot
type ScheduleResponse struct {
	ScheduleSummary
	Plot *PlotSummary `json:"parcela"`
}

// NewScheduleSummary maps a schedule to its scalar-only form
func NewScheduleSummary(s models.WateringSchedule) ScheduleSummary {
	days := []string(s.DaysOfWeek)
	if days == nil {
		days = []string{}
	}
	return ScheduleSummary{
		ID:         s.ID,
		PlotID:     s.PlotID,
		DaysOfWeek: days,
		TimeOfDay:  s.TimeOfDay,
		Active:     s.Active,
	}
}

// NewScheduleResponse maps a schedule and its plot
func NewScheduleResponse(s models.WateringSchedule) ScheduleResponse {
	return ScheduleResponse{
		ScheduleSummary: NewScheduleSummary(s),
		Plot:            plotSummaryPtr(s.Plot),
	}
}

// NewScheduleListResponse maps a list of schedules
func NewScheduleListResponse(schedules []models.WateringSchedule) []ScheduleResponse {
	response := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		response = append(response, NewScheduleResponse(s))
	}
	return response
}
