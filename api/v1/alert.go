package v1

import (
	"net/http"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AlertController handles alert-related API endpoints
type AlertController struct {
	alertService *services.AlertService
}

// NewAlertController creates a new alert controller
func NewAlertController(db *gorm.DB) *AlertController {
	return &AlertController{
		alertService: services.NewAlertService(db),
	}
}

// RegisterRoutes registers alert routes
func (c *AlertController) RegisterRoutes(router *gin.RouterGroup) {
	alerts := router.Group("/alertas")
	{
		alerts.GET("", c.ListAlerts)
		alerts.GET("/no-resueltas", c.ListUnresolvedAlerts)
		alerts.GET("/tipo/:tipo", c.ListAlertsByType)
		alerts.GET("/severidad/:severidad", c.ListAlertsBySeverity)
		alerts.GET("/parcela/:parcelaId", c.ListAlertsByPlot)
		alerts.GET("/arbol/:arbolId", c.ListAlertsByTree)
		alerts.GET("/:id", c.GetAlert)
		alerts.POST("", c.CreateAlert)
		alerts.PUT("/:id", c.UpdateAlert)
		alerts.PATCH("/:id/resolver", c.ResolveAlert)
		alerts.DELETE("/:id", c.DeleteAlert)
	}
}

// ListAlerts retrieves all alerts
func (c *AlertController) ListAlerts(ctx *gin.Context) {
	alerts, err := c.alertService.ListAlerts(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAlertListResponse(alerts))
}

// ListUnresolvedAlerts retrieves the alerts not yet resolved
func (c *AlertController) ListUnresolvedAlerts(ctx *gin.Context) {
	alerts, err := c.alertService.ListUnresolvedAlerts(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAlertListResponse(alerts))
}

// ListAlertsByType retrieves the alerts of a type
func (c *AlertController) ListAlertsByType(ctx *gin.Context) {
	alerts, err := c.alertService.ListAlertsByType(ctx.Request.Context(), ctx.Param("tipo"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAlertListResponse(alerts))
}

// ListAlertsBySeverity retrieves the alerts of a severity
func (c *AlertController) ListAlertsBySeverity(ctx *gin.Context) {
	alerts, err := c.alertService.ListAlertsBySeverity(ctx.Request.Context(), ctx.Param("severidad"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAlertListResponse(alerts))
}

// ListAlertsByPlot retrieves the alerts of a plot
func (c *AlertController) ListAlertsByPlot(ctx *gin.Context) {
	plotID, ok := pathID(ctx, "parcelaId")
	if !ok {
		return
	}

	alerts, err := c.alertService.ListAlertsByPlot(ctx.Request.Context(), plotID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAlertListResponse(alerts))
}

// ListAlertsByTree retrieves the alerts of a tree
func (c *AlertController) ListAlertsByTree(ctx *gin.Context) {
	treeID, ok := pathID(ctx, "arbolId")
	if !ok {
		return
	}

	alerts, err := c.alertService.ListAlertsByTree(ctx.Request.Context(), treeID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAlertListResponse(alerts))
}

// GetAlert retrieves a specific alert
func (c *AlertController) GetAlert(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	alert, err := c.alertService.GetAlert(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAlertResponse(alert))
}

// CreateAlert creates a new alert
func (c *AlertController) CreateAlert(ctx *gin.Context) {
	var request dto.CreateAlertRequest
	if !bindJSON(ctx, &request, false) {
		return
	}

	alert, err := c.alertService.CreateAlert(ctx.Request.Context(), request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAlertResponse(alert))
}

// UpdateAlert updates an existing alert
func (c *AlertController) UpdateAlert(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.UpdateAlertRequest
	if !bindJSON(ctx, &request, true) {
		return
	}

	alert, err := c.alertService.UpdateAlert(ctx.Request.Context(), id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAlertResponse(alert))
}

// ResolveAlert marks an alert as resolved (or reopens it with {"resuelta": false})
func (c *AlertController) ResolveAlert(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.ResolveAlertRequest
	if !bindJSON(ctx, &request, true) {
		return
	}

	alert, err := c.alertService.ResolveAlert(ctx.Request.Context(), id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAlertResponse(alert))
}

// DeleteAlert deletes an alert
func (c *AlertController) DeleteAlert(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.alertService.DeleteAlert(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Alerta eliminada correctamente"})
}
