package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// DragHandlers covers the drag and drop gesture endpoints. The client
// reports drag-start, drop, and drag-end as discrete events; the session
// holds the single in-flight gesture between them.
type DragHandlers struct {
	editorService *services.EditorService
	logger        *logging.ChanneledLogger
}

// NewDragHandlers creates drag handlers with injected dependencies.
func NewDragHandlers(editorService *services.EditorService, logger *logging.ChanneledLogger) *DragHandlers {
	return &DragHandlers{
		editorService: editorService,
		logger:        logger,
	}
}

// PostStart handles POST /api/v1/sessions/:sessionId/drag - begins a
// palette drag (type set) or a block reorder drag (blockId set).
func (h *DragHandlers) PostStart(c *gin.Context) {
	var req struct {
		Type    string `json:"type"`
		BlockID string `json:"blockId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sessionID := c.Param("sessionId")
	var err error
	switch {
	case req.Type != "":
		err = h.editorService.BeginPaletteDrag(sessionID, editor.BlockType(req.Type))
	case req.BlockID != "":
		err = h.editorService.BeginBlockDrag(sessionID, req.BlockID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type or blockId is required"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dragging": true})
}

// PostDrop handles POST /api/v1/sessions/:sessionId/drop - completes the
// active drag over a target block, or over the open canvas when targetId
// is empty.
func (h *DragHandlers) PostDrop(c *gin.Context) {
	var req struct {
		TargetID string `json:"targetId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.editorService.Drop(c.Param("sessionId"), req.TargetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// PostEnd handles POST /api/v1/sessions/:sessionId/drag/end - clears the
// gesture whether or not a drop happened.
func (h *DragHandlers) PostEnd(c *gin.Context) {
	if err := h.editorService.EndDrag(c.Param("sessionId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ended": true})
}
