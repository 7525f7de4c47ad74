package v1

import (
	"net/http"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SensorController handles sensor-related API endpoints
type SensorController struct {
	sensorService *services.SensorService
}

// NewSensorController creates a new sensor controller
func NewSensorController(db *gorm.DB) *SensorController {
	return &SensorController{
		sensorService: services.NewSensorService(db),
	}
}

// RegisterRoutes registers sensor routes
func (c *SensorController) RegisterRoutes(router *gin.RouterGroup) {
	sensors := router.Group("/sensores")
	{
		sensors.GET("", c.ListSensors)
		sensors.GET("/arbol/:arbolId", c.ListSensorsByTree)
		sensors.GET("/tipo/:tipo", c.ListSensorsByType)
		sensors.GET("/:id", c.GetSensor)
		sensors.POST("", c.CreateSensor)
		sensors.PUT("/:id", c.UpdateSensor)
		sensors.DELETE("/:id", c.DeleteSensor)
	}
}

// ListSensors retrieves all sensors
func (c *SensorController) ListSensors(ctx *gin.Context) {
	sensors, err := c.sensorService.ListSensors(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSensorListResponse(sensors))
}

// ListSensorsByTree retrieves the sensors of a tree
func (c *SensorController) ListSensorsByTree(ctx *gin.Context) {
	treeID, ok := pathID(ctx, "arbolId")
	if !ok {
		return
	}

	sensors, err := c.sensorService.ListSensorsByTree(ctx.Request.Context(), treeID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSensorListResponse(sensors))
}

// ListSensorsByType retrieves the sensors of a type
func (c *SensorController) ListSensorsByType(ctx *gin.Context) {
	sensors, err := c.sensorService.ListSensorsByType(ctx.Request.Context(), ctx.Param("tipo"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSensorListResponse(sensors))
}

// GetSensor retrieves a specific sensor
func (c *SensorController) GetSensor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	sensor, err := c.sensorService.GetSensor(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSensorResponse(sensor))
}

// CreateSensor creates a new sensor
func (c *SensorController) CreateSensor(ctx *gin.Context) {
	var request dto.CreateSensorRequest
	if !bindJSON(ctx, &request, false) {
		return
	}

	sensor, err := c.sensorService.CreateSensor(ctx.Request.Context(), request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSensorResponse(sensor))
}

// UpdateSensor updates an existing sensor
func (c *SensorController) UpdateSensor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.UpdateSensorRequest
	if !bindJSON(ctx, &request, true) {
		return
	}

	sensor, err := c.sensorService.UpdateSensor(ctx.Request.Context(), id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSensorResponse(sensor))
}

// DeleteSensor deletes a sensor
func (c *SensorController) DeleteSensor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.sensorService.DeleteSensor(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Sensor eliminado correctamente"})
}
