package dto

import (
	"github.com/agro-riego/api/models"
	"github.com/agro-riego/api/utils"
)

// CreateTreeRequest is the structure for tree creation requests
type CreateTreeRequest struct {
	PlotID        utils.FlexInt  `json:"parcela_id" binding:"required,gt=0"`
	Row           *utils.FlexInt `json:"fila" binding:"required"`
	Column        *utils.FlexInt `json:"columna" binding:"required"`
	Status        string         `json:"estado"`
	StatusComment *string        `json:"comentario_estado"`
}

// UpdateTreeRequest is the structure for tree update requests.
// comentario_estado sent as null clears the comment.
type UpdateTreeRequest struct {
	PlotID        *utils.FlexInt       `json:"parcela_id" binding:"omitempty,gt=0"`
	Row           *utils.FlexInt       `json:"fila"`
	Column        *utils.FlexInt       `json:"columna"`
	Status        *string              `json:"estado"`
	StatusComment utils.NullableString `json:"comentario_estado"`
}

// TreeSummary is a tree without relations
type TreeSummary struct {
	ID            uint    `json:"id"`
	PlotID        uint    `json:"parcela_id"`
	Row           int     `json:"fila"`
	Column        int     `json:"columna"`
	Status        string  `json:"estado"`
	StatusComment *string `json:"comentario_estado"`
}

// TreeWithPlot is a tree nested under a sensor or alert, carrying its plot
type TreeWithPlot struct {
	TreeSummary
	Plot *PlotSummary `json:"parcela"`
}

// TreeResponse is a tree with its plot, sensors and alerts
type TreeResponse struct {
	TreeSummary
	Plot    *PlotSummary    `json:"parcela"`
	Sensors []SensorSummary `json:"sensores"`
	Alerts  []AlertSummary  `json:"alertas"`
}

// NewTreeSummary maps a tree to its scalar-only form
func NewTreeSummary(t models.Tree) TreeSummary {
	return TreeSummary{
		ID:            t.ID,
		PlotID:        t.PlotID,
		Row:           t.Row,
		Column:        t.Column,
		Status:        t.Status,
		StatusComment: t.StatusComment,
	}
}

func treeWithPlotPtr(t *models.Tree) *TreeWithPlot {
	if t == nil {
		return nil
	}
	return &TreeWithPlot{
		TreeSummary: NewTreeSummary(*t),
		Plot:        plotSummaryPtr(t.Plot),
	}
}

// NewTreeResponse maps a tree and its loaded relations
func NewTreeResponse(t models.Tree) TreeResponse {
	response := TreeResponse{
		TreeSummary: NewTreeSummary(t),
		Plot:        plotSummaryPtr(t.Plot),
		Sensors:     make([]SensorSummary, 0, len(t.Sensors)),
		Alerts:      make([]AlertSummary, 0, len(t.Alerts)),
	}
	for _, s := range t.Sensors {
		response.Sensors = append(response.Sensors, NewSensorSummary(s))
	}
	for _, a := range t.Alerts {
		response.Alerts = append(response.Alerts, NewAlertSummary(a))
	}
	return response
}

// NewTreeListResponse maps a list of trees
func NewTreeListResponse(trees []models.Tree) []TreeResponse {
	response := make([]TreeResponse, 0, len(trees))
	for _, t := range trees {
		response = append(response, NewTreeResponse(t))
	}
	return response
}
