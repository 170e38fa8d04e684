package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// InspectorHandlers covers the per-block edit panel endpoints.
type InspectorHandlers struct {
	inspectorService *services.InspectorService
	logger           *logging.ChanneledLogger
}

// NewInspectorHandlers creates inspector handlers with injected dependencies.
func NewInspectorHandlers(inspectorService *services.InspectorService, logger *logging.ChanneledLogger) *InspectorHandlers {
	return &InspectorHandlers{
		inspectorService: inspectorService,
		logger:           logger,
	}
}

// PostOpen handles POST /api/v1/sessions/:sessionId/inspector/:blockId -
// opens the edit panel for a block, closing any other open panel.
func (h *InspectorHandlers) PostOpen(c *gin.Context) {
	view, err := h.inspectorService.Open(c.Param("sessionId"), c.Param("blockId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inspector": view})
}

// PostSave handles POST /api/v1/sessions/:sessionId/inspector/:blockId/save -
// applies the submitted form values and closes the panel.
func (h *InspectorHandlers) PostSave(c *gin.Context) {
	var req struct {
		Values map[string]string `json:"values" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	block, err := h.inspectorService.Save(c.Param("sessionId"), c.Param("blockId"), req.Values)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"block": block})
}

// DeleteOpen handles DELETE /api/v1/sessions/:sessionId/inspector -
// closes the panel without saving.
func (h *InspectorHandlers) DeleteOpen(c *gin.Context) {
	if err := h.inspectorService.Close(c.Param("sessionId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": true})
}
