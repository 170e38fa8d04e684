package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/messaging"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// StatusHandlers exposes the save-status WebSocket feed.
type StatusHandlers struct {
	editorService *services.EditorService
	broadcaster   *messaging.StatusBroadcaster
	logger        *logging.ChanneledLogger
}

// NewStatusHandlers creates status handlers with injected dependencies.
func NewStatusHandlers(editorService *services.EditorService, broadcaster *messaging.StatusBroadcaster, logger *logging.ChanneledLogger) *StatusHandlers {
	return &StatusHandlers{
		editorService: editorService,
		broadcaster:   broadcaster,
		logger:        logger,
	}
}

// GetStatusSocket handles GET /api/v1/sessions/:sessionId/status - upgrades
// to a WebSocket that streams save-status changes for the session.
func (h *StatusHandlers) GetStatusSocket(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if _, err := h.editorService.Session(sessionID); err != nil {
		respondError(c, err)
		return
	}

	if err := h.broadcaster.Subscribe(c.Writer, c.Request, sessionID); err != nil {
		h.logger.Editor().Error("WebSocket upgrade failed",
			"sessionId", sessionID, "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
	}
}
