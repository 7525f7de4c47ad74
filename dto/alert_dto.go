package dto

import (
	"time"

	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/utils"
)

// CreateAlertRequest is the structure for alert creation requests.
// Each reference is optional and independent of the others.
type CreateAlertRequest struct {
	Type      string           `json:"tipo" binding:"required"`
	Message   string           `json:"mensaje" binding:"required"`
	Severity  string           `json:"severidad" binding:"required"`
	SensorID  utils.NullableID `json:"sensor_id"`
	TreeID    utils.NullableID `json:"arbol_id"`
	PlotID    utils.NullableID `json:"parcela_id"`
	Resolved  *utils.FlexBool  `json:"resuelta"`
	Timestamp *utils.FlexTime  `json:"fecha_hora"`
}

// UpdateAlertRequest is the structure for alert update requests.
// The three references tell apart an omitted field from an explicit null.
type UpdateAlertRequest struct {
	Type      *string          `json:"tipo"`
	Message   *string          `json:"mensaje"`
	Severity  *string          `json:"severidad"`
	SensorID  utils.NullableID `json:"sensor_id"`
	TreeID    utils.NullableID `json:"arbol_id"`
	PlotID    utils.NullableID `json:"parcela_id"`
	Resolved  *utils.FlexBool  `json:"resuelta"`
	Timestamp *utils.FlexTime  `json:"fecha_hora"`
}

// ResolveAlertRequest is the body of PATCH /alertas/:id/resolver
type ResolveAlertRequest struct {
	Resolved *utils.FlexBool `json:"resuelta"`
}

// AlertSummary is an alert without relations
type AlertSummary struct {
	ID        uint      `json:"id"`
	Type      string    `json:"tipo"`
	Message   string    `json:"mensaje"`
	Severity  string    `json:"severidad"`
	SensorID  *uint     `json:"sensor_id"`
	TreeID    *uint     `json:"arbol_id"`
	PlotID    *uint     `json:"parcela_id"`
	Resolved  bool      `json:"resuelta"`
	Timestamp time.Time `json:"fecha_hora"`
}

// AlertResponse is an alert with its sensor, tree and plot chains.
// Each reference is null when the alert does not point at one.
type AlertResponse struct {
	AlertSummary
	Sensor *SensorWithTree `json:"sensor"`
	Tree   *TreeWithPlot   `json:"arbol"`
	Plot   *PlotSummary    `json:"parcela"`
}

// NewAlertSummary maps an alert to its scalar-only form
func NewAlertSummary(a models.Alert) AlertSummary {
	return AlertSummary{
		ID:        a.ID,
		Type:      a.Type,
		Message:   a.Message,
		Severity:  a.Severity,
		SensorID:  a.SensorID,
		TreeID:    a.TreeID,
		PlotID:    a.PlotID,
		Resolved:  a.Resolved,
		Timestamp: a.Timestamp,
	}
}

// NewAlertResponse maps an alert and its loaded references
func NewAlertResponse(a models.Alert) AlertResponse {
	return AlertResponse{
		AlertSummary: NewAlertSummary(a),
		Sensor:       sensorWithTreePtr(a.Sensor),
		Tree:         treeWithPlotPtr(a.Tree),
		Plot:         plotSummaryPtr(a.Plot),
	}
}

// NewAlertListResponse maps a list of alerts
func NewAlertListResponse(alerts []models.Alert) []AlertResponse {
	response := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		response = append(response, NewAlertResponse(a))
	}
	return response
}
