package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// MediaHandlers covers inline image uploads.
type MediaHandlers struct {
	mediaService *services.MediaService
	logger       *logging.ChanneledLogger
}

// NewMediaHandlers creates media handlers with injected dependencies.
func NewMediaHandlers(mediaService *services.MediaService, logger *logging.ChanneledLogger) *MediaHandlers {
	return &MediaHandlers{
		mediaService: mediaService,
		logger:       logger,
	}
}

// PostUpload handles POST /api/v1/media - stores a data: URL image and
// returns its serving URL and responsive srcset.
func (h *MediaHandlers) PostUpload(c *gin.Context) {
	var req struct {
		Data string `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.mediaService.Upload(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.URL, "srcSet": result.SrcSet})
}
