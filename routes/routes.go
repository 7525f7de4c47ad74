package routes

import (
	"time"

	v1 "github.com/agro-riego/api/api/v1"
	"github.com/agro-riego/api/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRouter builds the HTTP engine with middleware and all API routes
func SetupRouter(db *gorm.DB, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(log), middleware.Recovery())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	system := v1.NewSystemController(db)

	// Public health check
	router.GET("/", system.HealthCheck)

	// API routes
	api := router.Group("/api")
	v1.RegisterRoutes(api, db)

	return router
}
