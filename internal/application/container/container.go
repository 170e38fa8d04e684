// Package container wires the application's services and infrastructure
// into a single dependency graph.
package container

import (
	"fmt"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/caching/stores"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/media"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/messaging"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/persistence/database"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/persistence/drafts"
	"github.com/UniScopeHQ/composer-go/pkg/config"
)

// Container holds every singleton service and its infrastructure.
type Container struct {
	Logger      *logging.ChanneledLogger
	Database    *database.Database
	Sessions    *stores.SessionStore
	Broadcaster *messaging.StatusBroadcaster

	EditorService    *services.EditorService
	InspectorService *services.InspectorService
	AutosaveService  *services.AutosaveService
	PublishService   *services.PublishService
	MediaService     *services.MediaService
	AuthService      *services.AuthService
}

// New builds the full dependency graph.
func New(logger *logging.ChanneledLogger) (*Container, error) {
	db, err := database.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize draft database: %w", err)
	}
	logger.Database().Info("Draft database ready",
		"turso", db.UseTurso, "path", config.DraftDBPath)

	draftRepo := drafts.NewRepository(db)
	sessions := stores.NewSessionStore()
	broadcaster := messaging.NewStatusBroadcaster(logger)

	editorService := services.NewEditorService(sessions, draftRepo, broadcaster, logger)
	mediaService := services.NewMediaService(media.NewImageProcessor(config.MediaBasePath), logger)

	c := &Container{
		Logger:      logger,
		Database:    db,
		Sessions:    sessions,
		Broadcaster: broadcaster,

		EditorService:    editorService,
		InspectorService: services.NewInspectorService(editorService, mediaService, logger),
		AutosaveService:  services.NewAutosaveService(sessions, draftRepo, broadcaster, logger, config.AutosaveInterval),
		PublishService:   services.NewPublishService(config.PublishEndpoint, config.PublishTimeout, logger),
		MediaService:     mediaService,
		AuthService:      services.NewAuthService(config.EditorPasswordHash, config.JWTSecret, config.TokenLifetime, logger),
	}
	return c, nil
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.Database != nil {
		return c.Database.Close()
	}
	return nil
}
