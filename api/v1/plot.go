package v1

import (
	"net/http"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlotController handles plot-related API endpoints
type PlotController struct {
	plotService *services.PlotService
}

// NewPlotController creates a new plot controller
func NewPlotController(db *gorm.DB) *PlotController {
	return &PlotController{
		plotService: services.NewPlotService(db),
	}
}

// RegisterRoutes registers plot routes
func (c *PlotController) RegisterRoutes(router *gin.RouterGroup) {
	plots := router.Group("/parcelas")
	{
		plots.GET("", c.ListPlots)
		plots.GET("/cultivo/:cultivoId", c.ListPlotsByCrop)
		plots.GET("/epoca/:epocaId", c.ListPlotsBySeason)
		plots.GET("/:id", c.GetPlot)
		plots.POST("", c.CreatePlot)
		plots.PUT("/:id", c.UpdatePlot)
		plots.DELETE("/:id", c.DeletePlot)
	}
}

// ListPlots retrieves all plots
func (c *PlotController) ListPlots(ctx *gin.Context) {
	plots, err := c.plotService.ListPlots(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPlotListResponse(plots))
}

// ListPlotsByCrop retrieves the plots planted with a crop
func (c *PlotController) ListPlotsByCrop(ctx *gin.Context) {
	plots, err := c.plotService.ListPlotsByCrop(ctx.Request.Context(), ctx.Param("cultivoId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPlotListResponse(plots))
}

// ListPlotsBySeason retrieves the plots of a season
func (c *PlotController) ListPlotsBySeason(ctx *gin.Context) {
	plots, err := c.plotService.ListPlotsBySeason(ctx.Request.Context(), ctx.Param("epocaId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPlotListResponse(plots))
}

// GetPlot retrieves a specific plot
func (c *PlotController) GetPlot(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	plot, err := c.plotService.GetPlot(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPlotResponse(plot))
}

// CreatePlot creates a new plot
func (c *PlotController) CreatePlot(ctx *gin.Context) {
	var request dto.CreatePlotRequest
	if !bindJSON(ctx, &request, false) {
		return
	}

	plot, err := c.plotService.CreatePlot(ctx.Request.Context(), request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewPlotResponse(plot))
}

// UpdatePlot updates an existing plot
func (c *PlotController) UpdatePlot(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.UpdatePlotRequest
	if !bindJSON(ctx, &request, true) {
		return
	}

	plot, err := c.plotService.UpdatePlot(ctx.Request.Context(), id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPlotResponse(plot))
}

// DeletePlot deletes a plot with its trees, schedules and history
func (c *PlotController) DeletePlot(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.plotService.DeletePlot(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Parcela eliminada correctamente"})
}
