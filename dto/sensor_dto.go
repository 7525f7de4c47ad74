package dto

import (
	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/utils"
)

// CreateSensorRequest is the structure for sensor creation requests
type CreateSensorRequest struct {
	TreeID   utils.FlexInt `json:"arbol_id" binding:"required,gt=0"`
	Type     string        `json:"tipo" binding:"required"`
	DataPath *string       `json:"firebase_path"`
}

// UpdateSensorRequest is the structure for sensor update requests.
// firebase_path sent as null clears the path.
type UpdateSensorRequest struct {
	TreeID   *utils.FlexInt       `json:"arbol_id" binding:"omitempty,gt=0"`
	Type     *string              `json:"tipo"`
	DataPath utils.NullableString `json:"firebase_path"`
}

// SensorSummary is a sensor without relations
type SensorSummary struct {
	ID       uint    `json:"id"`
	TreeID   uint    `json:"arbol_id"`
	Type     string  `json:"tipo"`
	DataPath *string `json:"firebase_path"`
}

// SensorWithTree is a sensor nested under an alert, carrying its tree and plot
type SensorWithTree struct {
	SensorSummary
	Tree *TreeWithPlot `json:"arbol"`
}

// SensorResponse is a sensor with its tree (and plot) and alerts
type SensorResponse struct {
	SensorSummary
	Tree   *TreeWithPlot  `json:"arbol"`
	Alerts []AlertSummary `json:"alertas"`
}

// NewSensorSummary maps a sensor to its scalar-only form
func NewSensorSummary(s models.Sensor) SensorSummary {
	return SensorSummary{
		ID:       s.ID,
		TreeID:   s.TreeID,
		Type:     s.Type,
		DataPath: s.DataPath,
	}
}

func sensorWithTreePtr(s *models.Sensor) *SensorWithTree {
	if s == nil {
		return nil
	}
	return &SensorWithTree{
		SensorSummary: NewSensorSummary(*s),
		Tree:          treeWithPlotPtr(s.Tree),
	}
}

// NewSensorResponse maps a sensor and its loaded relations
func NewSensorResponse(s models.Sensor) SensorResponse {
	response := SensorResponse{
		SensorSummary: NewSensorSummary(s),
		Tree:          treeWithPlotPtr(s.Tree),
		Alerts:        make([]AlertSummary, 0, len(s.Alerts)),
	}
	for _, a := range s.Alerts {
		response.Alerts = append(response.Alerts, NewAlertSummary(a))
	}
	return response
}

// NewSensorListResponse maps a list of sensors
func NewSensorListResponse(sensors []models.Sensor) []SensorResponse {
	response := make([]SensorResponse, 0, len(sensors))
	for _, s := range sensors {
		response = append(response, NewSensorResponse(s))
	}
	return response
}
