package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/config-service/config"
	"github.com/dustin/config-service/internal/health"
	"github.com/dustin/config-service/pkg/database"
	"github.com/dustin/config-service/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Populate the process environment from .env when present, for local
	// development. Environment variables already set take precedence.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("Failed to read .env file")
	}

	// Validate configuration before anything else initializes. The error
	// lists every bad variable, and nothing serves until it is fixed.
	cfg, err := config.Load(config.OSEnvironment())
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	appLogger := logger.New(&cfg.Logging)
	appLogger.Info("Starting " + cfg.Logging.ServiceName)

	// Connect to database using validated settings
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		appLogger.Fatal("Failed to connect to database: " + err.Error())
	}

	appLogger.Info("Database connection established")

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Fatal("Failed to access database handle: " + err.Error())
	}

	// Read-only view of the config for handlers
	cfgService := config.NewService(cfg)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup HTTP router with middleware
	router := gin.New()

	// Configure standard middleware stack
	router.Use(requestid.New())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	// Health check endpoints
	healthHandler := health.NewHandler(cfgService, sqlDB.Ping)
	healthHandler.RegisterRoutes(router)

	// Start HTTP server with validated settings
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine for graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server: " + err.Error())
		}
	}()

	appLogger.Info(fmt.Sprintf("Server started successfully on port %d (%s environment)",
		cfg.Server.Port, cfg.Server.Environment))

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Shutdown server with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown: " + err.Error())
	}

	appLogger.Info("Server shutdown complete")
}
