package v1

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB) {
	// Health and diagnostics
	NewSystemController(db).RegisterRoutes(router)

	// Resource endpoints
	NewPlotController(db).RegisterRoutes(router)
	NewTreeController(db).RegisterRoutes(router)
	NewSensorController(db).RegisterRoutes(router)
	NewWateringScheduleController(db).RegisterRoutes(router)
	NewWateringHistoryController(db).RegisterRoutes(router)
	NewAlertController(db).RegisterRoutes(router)
}
