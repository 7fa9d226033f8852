// Package main is the entry point for the Docstore Service.
// @title Docstore Service API
// @version 1.0
// @description Inserts schemaless documents into named collections and lists the distinct values of a field.

// @contact.name API Support
// @contact.url https://github.com/unifiedui/docstore-service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/unifiedui/docstore-service/docs"
	"github.com/unifiedui/docstore-service/internal/api/handlers"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
	"github.com/unifiedui/docstore-service/internal/api/routes"
	"github.com/unifiedui/docstore-service/internal/bootstrap"
	"github.com/unifiedui/docstore-service/internal/config"
	"github.com/unifiedui/docstore-service/internal/core/cache"
	"github.com/unifiedui/docstore-service/internal/pkg/logging"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.Setup(cfg.Log, os.Stdout)
	ctx := context.Background()

	if err := bootstrap.ResolveSecrets(ctx, cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to resolve secrets")
	}

	// The client connects lazily, so an unreachable server surfaces on the first request.
	docDBClient, err := bootstrap.NewDocDBClient(ctx, cfg.DocDB, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize document db client")
	}

	cacheClient, err := bootstrap.NewCache(cfg.Cache)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize cache client")
	}

	store, err := docstore.NewStore(&docstore.Config{
		Client:   docDBClient,
		Cache:    cacheClient,
		CacheTTL: cfg.Cache.TTL,
		Logger:   &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize document store")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("failed to close document store")
		}
	}()

	gin.SetMode(cfg.Server.GinMode)

	router := setupRouter(cfg, logger, store, cacheClient)

	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("docdb_type", cfg.DocDB.Type).
			Str("cache_type", cfg.Cache.Type).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	logger.Info().Msg("server exited")
}

// setupRouter creates and configures the Gin router.
func setupRouter(cfg *config.Config, logger zerolog.Logger, store docstore.Store, cacheClient cache.Cache) *gin.Engine {
	router := gin.New()

	loggingMw := middleware.NewLoggingMiddlewareWithLogger(logger)
	errorMw := middleware.NewErrorMiddleware()
	corsCfg := middleware.DefaultCORSConfig(cfg.Server.CORSAllowedOrigins)

	routesCfg := &routes.Config{
		HealthHandler:    handlers.NewHealthHandler(store, cacheClient),
		DocumentsHandler: handlers.NewDocumentsHandler(store),
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw, corsCfg)

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
