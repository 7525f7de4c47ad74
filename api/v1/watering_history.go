package v1

import (
	"net/http"
	"time"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/services"
	"github.com/agro-riego/api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WateringHistoryController handles watering history API endpoints
type WateringHistoryController struct {
	historyService *services.WateringHistoryService
}

// NewWateringHistoryController creates a new watering history controller
func NewWateringHistoryController(db *gorm.DB) *WateringHistoryController {
	return &WateringHistoryController{
		historyService: services.NewWateringHistoryService(db),
	}
}

// RegisterRoutes registers watering history routes
func (c *WateringHistoryController) RegisterRoutes(router *gin.RouterGroup) {
	history := router.Group("/historial")
	{
		history.GET("", c.ListHistory)
		history.GET("/fecha", c.ListHistoryByDate)
		history.GET("/estado/:estado", c.ListHistoryByStatus)
		history.GET("/parcela/:parcelaId", c.ListHistoryByPlot)
		history.GET("/:id", c.GetHistory)
		history.POST("", c.CreateHistory)
		history.PUT("/:id", c.UpdateHistory)
		history.DELETE("/:id", c.DeleteHistory)
	}
}

// ListHistory retrieves the whole history
func (c *WateringHistoryController) ListHistory(ctx *gin.Context) {
	history, err := c.historyService.ListHistory(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewHistoryListResponse(history))
}

// ListHistoryByDate retrieves the history between fechaInicio and fechaFin (inclusive)
func (c *WateringHistoryController) ListHistoryByDate(ctx *gin.Context) {
	from, ok := queryTime(ctx, "fechaInicio")
	if !ok {
		return
	}
	to, ok := queryTime(ctx, "fechaFin")
	if !ok {
		return
	}

	history, err := c.historyService.ListHistoryBetween(ctx.Request.Context(), from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewHistoryListResponse(history))
}

// ListHistoryByStatus retrieves the history records with a status
func (c *WateringHistoryController) ListHistoryByStatus(ctx *gin.Context) {
	history, err := c.historyService.ListHistoryByStatus(ctx.Request.Context(), ctx.Param("estado"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewHistoryListResponse(history))
}

// ListHistoryByPlot retrieves the history of a plot
func (c *WateringHistoryController) ListHistoryByPlot(ctx *gin.Context) {
	plotID, ok := pathID(ctx, "parcelaId")
	if !ok {
		return
	}

	history, err := c.historyService.ListHistoryByPlot(ctx.Request.Context(), plotID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewHistoryListResponse(history))
}

// GetHistory retrieves a specific history record
func (c *WateringHistoryController) GetHistory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	record, err := c.historyService.GetHistory(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewHistoryResponse(record))
}

// CreateHistory creates a new history record
func (c *WateringHistoryController) CreateHistory(ctx *gin.Context) {
	var request dto.CreateHistoryRequest
	if !bindJSON(ctx, &request, false) {
		return
	}

	record, err := c.historyService.CreateHistory(ctx.Request.Context(), request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewHistoryResponse(record))
}

// UpdateHistory updates an existing history record
func (c *WateringHistoryController) UpdateHistory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.UpdateHistoryRequest
	if !bindJSON(ctx, &request, true) {
		return
	}

	record, err := c.historyService.UpdateHistory(ctx.Request.Context(), id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewHistoryResponse(record))
}

// DeleteHistory deletes a history record
func (c *WateringHistoryController) DeleteHistory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.historyService.DeleteHistory(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Registro de historial eliminado correctamente"})
}

// queryTime parses an optional date query parameter; nil when absent
func queryTime(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := utils.ParseTime(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "fecha inválida en " + name + ": " + raw})
		return nil, false
	}
	return &t, true
}
