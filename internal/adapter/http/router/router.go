package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zenetodev/emailclassifier/internal/adapter/client"
	"github.com/zenetodev/emailclassifier/internal/adapter/http/handler"
	"github.com/zenetodev/emailclassifier/internal/adapter/http/middleware"
	"github.com/zenetodev/emailclassifier/internal/adapter/repository/memory"
	"github.com/zenetodev/emailclassifier/internal/adapter/repository/postgres"
	"github.com/zenetodev/emailclassifier/internal/adapter/settings"
	"github.com/zenetodev/emailclassifier/internal/domain/repository"
	"github.com/zenetodev/emailclassifier/internal/domain/service"
	"github.com/zenetodev/emailclassifier/internal/infrastructure/config"
	"github.com/zenetodev/emailclassifier/internal/usecase"
)

// Setup creates and configures the Gin router. db and redisClient are
// optional: without them history lives in memory and settings in a local
// store.
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Remote classification service client
	classifierClient := client.NewClassifierClient(
		cfg.Classifier.BaseURL(),
		time.Duration(cfg.Classifier.TimeoutSeconds)*time.Second,
	)

	// Health endpoints
	healthHandler := handler.NewHealthHandler(classifierClient, db, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize storage adapters
	var historyRepo repository.HistoryRepository
	if db != nil {
		historyRepo = postgres.NewHistoryRepository(db)
	} else {
		historyRepo = memory.NewHistoryRepository()
	}

	var settingsStore service.SettingsStore
	if redisClient != nil {
		settingsStore = settings.NewRedisStore(redisClient, logger)
	} else {
		settingsStore = settings.NewMemoryStore()
	}

	// Initialize usecases
	classifyUC := usecase.NewClassifyUsecase(classifierClient, historyRepo, settingsStore, logger)
	ingestUC := usecase.NewIngestUsecase(classifierClient, logger)
	settingsUC := usecase.NewSettingsUsecase(settingsStore, classifierClient, cfg.Classifier.BaseURL(), logger)

	// A stored endpoint override takes effect immediately on startup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := settingsUC.ApplyEndpoint(ctx); err != nil {
		logger.Warn("failed to apply stored endpoint override", zap.Error(err))
	}

	// Initialize handlers
	classifyHandler := handler.NewClassifyHandler(classifyUC)
	ingestHandler := handler.NewIngestHandler(ingestUC)
	historyHandler := handler.NewHistoryHandler(historyRepo)
	settingsHandler := handler.NewSettingsHandler(settingsUC)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", classifyHandler.Classify)
		v1.POST("/classify/auto", classifyHandler.ClassifyAuto)
		v1.POST("/ingest", ingestHandler.Ingest)
		v1.GET("/stats", classifyHandler.Stats)

		v1.GET("/history", historyHandler.List)
		v1.DELETE("/history", historyHandler.Clear)

		v1.GET("/settings", settingsHandler.Get)
		v1.PUT("/settings", settingsHandler.Update)
	}

	return router
}
