// Package startup prepares the application server.
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/UniScopeHQ/composer-go/internal/application/container"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/caching/cleanup"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
	"github.com/UniScopeHQ/composer-go/internal/presentation/http/server"
	"github.com/UniScopeHQ/composer-go/pkg/config"
)

// Initialize performs the complete startup sequence: logging, the draft
// database, the service container, background workers, and the HTTP
// server, then blocks until shutdown.
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Step 1: Channeled logger
	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.LogDirectory = config.LogDirectory
	logger, err := logging.NewChanneledLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("Composer engine starting")

	// Step 2: Dependency injection container
	appContainer, err := container.New(logger)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 3: Background workers
	cleanupWorker := cleanup.NewWorker(appContainer.Sessions, &cleanup.Config{
		Interval:   config.SessionCleanupInterval,
		SessionTTL: config.SessionTTL,
	}, logger)
	go cleanupWorker.Start(ctx)

	go appContainer.AutosaveService.Start(ctx)
	logger.Startup().Info("Background workers started",
		"autosaveInterval", config.AutosaveInterval.String(),
		"sessionTTL", config.SessionTTL.String())

	// Step 4: HTTP server
	port := os.Getenv("PORT")
	if port == "" {
		port = config.Port
	}
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start).String(),
		"port", port)

	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown")

	// Cancel background tasks; the autosave loop flushes dirty documents
	// on its way out.
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	}

	if err := appContainer.Close(); err != nil {
		logger.Shutdown().Error("Error closing container", "error", err.Error())
	}

	logger.Shutdown().Info("Graceful shutdown complete", "uptime", time.Since(start).String())
	return nil
}

// setupLogging configures gin's runtime mode before any engine exists.
func setupLogging() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
}
