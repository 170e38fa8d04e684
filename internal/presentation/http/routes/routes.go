// Package routes defines the HTTP route table.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/container"
	"github.com/UniScopeHQ/composer-go/internal/presentation/http/handlers"
	"github.com/UniScopeHQ/composer-go/internal/presentation/http/middleware"
	"github.com/UniScopeHQ/composer-go/pkg/config"
)

// SetupRoutes builds the gin engine with all middleware and endpoints.
func SetupRoutes(c *container.Container) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	authHandlers := handlers.NewAuthHandlers(c.AuthService, c.Logger)
	sessionHandlers := handlers.NewSessionHandlers(c.EditorService, c.AutosaveService, c.Logger)
	blockHandlers := handlers.NewBlockHandlers(c.EditorService, c.Logger)
	dragHandlers := handlers.NewDragHandlers(c.EditorService, c.Logger)
	inspectorHandlers := handlers.NewInspectorHandlers(c.InspectorService, c.Logger)
	publishHandlers := handlers.NewPublishHandlers(c.EditorService, c.PublishService, c.Logger)
	paletteHandlers := handlers.NewPaletteHandlers()
	mediaHandlers := handlers.NewMediaHandlers(c.MediaService, c.Logger)
	statusHandlers := handlers.NewStatusHandlers(c.EditorService, c.Broadcaster, c.Logger)

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})
	router.Static("/media", config.MediaBasePath)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/login", authHandlers.PostLogin)
		api.GET("/palette", paletteHandlers.GetPalette)
		api.GET("/palette/:type/schema", paletteHandlers.GetSchema)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(c.AuthService))
		{
			authed.POST("/sessions", sessionHandlers.PostOpen)
			authed.GET("/sessions/:sessionId", sessionHandlers.GetSession)
			authed.DELETE("/sessions/:sessionId", sessionHandlers.DeleteSession)
			authed.PUT("/sessions/:sessionId/meta", sessionHandlers.PutMetadata)
			authed.POST("/sessions/:sessionId/save", sessionHandlers.PostSave)
			authed.DELETE("/drafts", sessionHandlers.DeleteDraft)

			authed.POST("/sessions/:sessionId/blocks", blockHandlers.PostInsert)
			authed.PUT("/sessions/:sessionId/blocks/:blockId", blockHandlers.PutUpdate)
			authed.POST("/sessions/:sessionId/blocks/:blockId/move", blockHandlers.PostMove)
			authed.POST("/sessions/:sessionId/blocks/:blockId/duplicate", blockHandlers.PostDuplicate)
			authed.DELETE("/sessions/:sessionId/blocks/:blockId", blockHandlers.Delete)

			authed.POST("/sessions/:sessionId/drag", dragHandlers.PostStart)
			authed.POST("/sessions/:sessionId/drop", dragHandlers.PostDrop)
			authed.POST("/sessions/:sessionId/drag/end", dragHandlers.PostEnd)

			authed.POST("/sessions/:sessionId/inspector/:blockId", inspectorHandlers.PostOpen)
			authed.POST("/sessions/:sessionId/inspector/:blockId/save", inspectorHandlers.PostSave)
			authed.DELETE("/sessions/:sessionId/inspector", inspectorHandlers.DeleteOpen)

			authed.GET("/sessions/:sessionId/preview", publishHandlers.GetPreview)
			authed.POST("/sessions/:sessionId/publish", publishHandlers.PostPublish)

			authed.POST("/media", mediaHandlers.PostUpload)
		}

		// The browser WebSocket API cannot set an Authorization header;
		// the socket validates the session id it subscribes to instead.
		api.GET("/sessions/:sessionId/status", statusHandlers.GetStatusSocket)
	}

	return router
}
