package v1

import (
	"net/http"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WateringScheduleController handles watering schedule API endpoints
type WateringScheduleController struct {
	scheduleService *services.WateringScheduleService
}

// NewWateringScheduleController creates a new watering schedule controller
func NewWateringScheduleController(db *gorm.DB) *WateringScheduleController {
	return &WateringScheduleController{
		scheduleService: services.NewWateringScheduleService(db),
	}
}

// RegisterRoutes registers watering schedule routes
func (c *WateringScheduleController) RegisterRoutes(router *gin.RouterGroup) {
	schedules := router.Group("/horarios")
	{
		schedules.GET("", c.ListSchedules)
		schedules.GET("/activos", c.ListActiveSchedules)
		schedules.GET("/parcela/:parcelaId", c.ListSchedulesByPlot)
		schedules.GET("/:id", c.GetSchedule)
		schedules.POST("", c.CreateSchedule)
		schedules.PUT("/:id", c.UpdateSchedule)
		schedules.PATCH("/:id/toggle", c.ToggleSchedule)
		schedules.DELETE("/:id", c.DeleteSchedule)
	}
}

// ListSchedules retrieves all schedules
func (c *WateringScheduleController) ListSchedules(ctx *gin.Context) {
	schedules, err := c.scheduleService.ListSchedules(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewScheduleListResponse(schedules))
}

// ListActiveSchedules retrieves the active schedules
func (c *WateringScheduleController) ListActiveSchedules(ctx *gin.Context) {
	schedules, err := c.scheduleService.ListActiveSchedules(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewScheduleListResponse(schedules))
}

// ListSchedulesByPlot retrieves the schedules of a plot
func (c *WateringScheduleController) ListSchedulesByPlot(ctx *gin.Context) {
	plotID, ok := pathID(ctx, "parcelaId")
	if !ok {
		return
	}

	schedules, err := c.scheduleService.ListSchedulesByPlot(ctx.Request.Context(), plotID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewScheduleListResponse(schedules))
}

// GetSchedule retrieves a specific schedule
func (c *WateringScheduleController) GetSchedule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	schedule, err := c.scheduleService.GetSchedule(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewScheduleResponse(schedule))
}

// CreateSchedule creates a new schedule
func (c *WateringScheduleController) CreateSchedule(ctx *gin.Context) {
	var request dto.CreateScheduleRequest
	if !bindJSON(ctx, &request, false) {
		return
	}

	schedule, err := c.scheduleService.CreateSchedule(ctx.Request.Context(), request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewScheduleResponse(schedule))
}

// UpdateSchedule updates an existing schedule
func (c *WateringScheduleController) UpdateSchedule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.UpdateScheduleRequest
	if !bindJSON(ctx, &request, true) {
		return
	}

	schedule, err := c.scheduleService.UpdateSchedule(ctx.Request.Context(), id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewScheduleResponse(schedule))
}

// ToggleSchedule switches a schedule on or off
func (c *WateringScheduleController) ToggleSchedule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.ToggleScheduleRequest
	if !bindJSON(ctx, &request, false) {
		return
	}

	schedule, err := c.scheduleService.ToggleSchedule(ctx.Request.Context(), id, request.Active.Bool())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewScheduleResponse(schedule))
}

// DeleteSchedule deletes a schedule
func (c *WateringScheduleController) DeleteSchedule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.scheduleService.DeleteSchedule(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Horario de riego eliminado correctamente"})
}
