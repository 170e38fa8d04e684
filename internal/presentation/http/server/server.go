// Package server provides HTTP server initialization and management.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/UniScopeHQ/composer-go/internal/application/container"
	"github.com/UniScopeHQ/composer-go/internal/presentation/http/routes"
	"github.com/UniScopeHQ/composer-go/pkg/config"
)

// Server wraps the HTTP server with configuration and dependency injection.
type Server struct {
	httpServer *http.Server
	container  *container.Container
}

// New creates a new HTTP server instance with dependency injection.
func New(port string, c *container.Container) *Server {
	router := routes.SetupRoutes(c)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	return &Server{
		httpServer: httpServer,
		container:  c,
	}
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.container.Logger.Startup().Info("Starting HTTP server", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.container.Logger.Shutdown().Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
