package v1

import (
	"net/http"

	"github.com/agro-riego/api/dto"
	"github.com/agro-riego/api/middleware"
	"github.com/agro-riego/api/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	serviceName    = "agro-riego-api"
	serviceVersion = "1.0.0"
)

// SystemController handles health and diagnostics endpoints
type SystemController struct {
	systemService *services.SystemService
}

// NewSystemController creates a new system controller
func NewSystemController(db *gorm.DB) *SystemController {
	return &SystemController{
		systemService: services.NewSystemService(db),
	}
}

// RegisterRoutes registers health and diagnostics routes
func (c *SystemController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.HealthCheck)
	router.GET("/diagnostico", c.Diagnostics)
}

// HealthCheck reports service status and database connectivity
func (c *SystemController) HealthCheck(ctx *gin.Context) {
	response := dto.HealthResponse{
		Status:   "ok",
		Service:  serviceName,
		Version:  serviceVersion,
		Database: "connected",
	}

	version, err := c.systemService.Health(ctx.Request.Context())
	if err != nil {
		middleware.Logger(ctx).Warn("database health check failed", zap.Error(err))
		response.Status = "error"
		response.Database = "disconnected"
		ctx.JSON(http.StatusServiceUnavailable, response)
		return
	}
	response.DBVersion = version

	ctx.JSON(http.StatusOK, response)
}

// Diagnostics reports table counts and domain statistics
func (c *SystemController) Diagnostics(ctx *gin.Context) {
	report, err := c.systemService.Diagnostics(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}
