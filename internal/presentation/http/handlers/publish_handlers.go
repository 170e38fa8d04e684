package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// PublishHandlers covers serialization endpoints: preview and publish.
type PublishHandlers struct {
	editorService  *services.EditorService
	publishService *services.PublishService
	logger         *logging.ChanneledLogger
}

// NewPublishHandlers creates publish handlers with injected dependencies.
func NewPublishHandlers(editorService *services.EditorService, publishService *services.PublishService, logger *logging.ChanneledLogger) *PublishHandlers {
	return &PublishHandlers{
		editorService:  editorService,
		publishService: publishService,
		logger:         logger,
	}
}

// GetPreview handles GET /api/v1/sessions/:sessionId/preview - the
// sanitized post HTML as it would publish, without submitting anything.
func (h *PublishHandlers) GetPreview(c *gin.Context) {
	session, err := h.editorService.Session(c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": h.publishService.Preview(session)})
}

// PostPublish handles POST /api/v1/sessions/:sessionId/publish -
// validates, serializes, and submits the document. A platform rejection
// or transport failure returns 502 and leaves the document untouched.
func (h *PublishHandlers) PostPublish(c *gin.Context) {
	session, err := h.editorService.Session(c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.publishService.Publish(session)
	if err != nil {
		switch err {
		case services.ErrMissingTitle, services.ErrMissingAuthor:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"slug": result.Slug, "success": true})
}
