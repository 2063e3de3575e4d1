package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zenetodev/emailclassifier/internal/adapter/http/router"
	"github.com/zenetodev/emailclassifier/internal/infrastructure/cache"
	"github.com/zenetodev/emailclassifier/internal/infrastructure/config"
	"github.com/zenetodev/emailclassifier/internal/infrastructure/database"
	"github.com/zenetodev/emailclassifier/internal/infrastructure/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize database (optional, history falls back to memory)
	var db *gorm.DB
	if cfg.Database.Enabled {
		db, err = database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Warn("Failed to connect to database, using in-memory history", zap.Error(err))
			db = nil
		} else {
			if err := database.AutoMigrate(db); err != nil {
				log.Error("Failed to run migrations", zap.Error(err))
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Info("Connected to database")
		}
	}

	// Initialize Redis (optional, settings fall back to memory)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, using in-memory settings", zap.Error(err))
			redisClient = nil
		} else {
			log.Info("Connected to Redis")
		}
	}

	log.Info("Classification service endpoint selected",
		zap.String("environment", cfg.Classifier.Environment),
		zap.String("base_url", cfg.Classifier.BaseURL()))

	// Setup router
	r := router.Setup(cfg, db, redisClient, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close database connection
	if db != nil {
		if sqlDB, err := db.DB(); err == nil && sqlDB != nil {
			_ = sqlDB.Close()
		}
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}
