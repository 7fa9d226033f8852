// Package routes defines the HTTP routes for the docstore service.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docstore-service/internal/api/handlers"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
)

// BasePath is the prefix of every API route.
const BasePath = "/api/v1/docstore"

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler    *handlers.HealthHandler
	DocumentsHandler *handlers.DocumentsHandler
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	v1 := r.Group(BasePath)
	{
		v1.GET("/health", cfg.HealthHandler.Health)
		v1.GET("/ready", cfg.HealthHandler.Ready)
		v1.GET("/live", cfg.HealthHandler.Live)

		databases := v1.Group("/databases/:database")
		{
			databases.GET("/collections", cfg.DocumentsHandler.ListCollections)

			collections := databases.Group("/collections/:collection")
			{
				collections.POST("/documents", cfg.DocumentsHandler.InsertDocument)
				collections.GET("/documents/:id", cfg.DocumentsHandler.GetDocument)
				collections.GET("/distinct/:field", cfg.DocumentsHandler.ListUniqueValues)
			}
		}
	}

	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware, corsCfg middleware.CORSConfig) {
	r.HandleMethodNotAllowed = true

	r.Use(loggingMw.RequestLogger())
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(middleware.NewCORSMiddleware(corsCfg))

	Setup(r, cfg)
}
