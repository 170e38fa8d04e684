package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// BlockHandlers covers direct block operations: insert, update, reorder,
// duplicate, delete.
type BlockHandlers struct {
	editorService *services.EditorService
	logger        *logging.ChanneledLogger
}

// NewBlockHandlers creates block handlers with injected dependencies.
func NewBlockHandlers(editorService *services.EditorService, logger *logging.ChanneledLogger) *BlockHandlers {
	return &BlockHandlers{
		editorService: editorService,
		logger:        logger,
	}
}

// PostInsert handles POST /api/v1/sessions/:sessionId/blocks - inserts a
// new block of the given type. Omitting atIndex appends.
func (h *BlockHandlers) PostInsert(c *gin.Context) {
	var req struct {
		Type    string `json:"type" binding:"required"`
		AtIndex *int   `json:"atIndex"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	atIndex := -1
	if req.AtIndex != nil {
		atIndex = *req.AtIndex
	}

	block, err := h.editorService.InsertBlock(c.Param("sessionId"), editor.BlockType(req.Type), atIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"block": block})
}

// PutUpdate handles PUT /api/v1/sessions/:sessionId/blocks/:blockId -
// merges content and style patches.
func (h *BlockHandlers) PutUpdate(c *gin.Context) {
	var req struct {
		Content *editor.ContentPatch `json:"content"`
		Style   *editor.StylePatch   `json:"style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.editorService.UpdateBlock(c.Param("sessionId"), c.Param("blockId"), req.Content, req.Style); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// PostMove handles POST /api/v1/sessions/:sessionId/blocks/:blockId/move -
// one-step reorder via the block's toolbar arrows.
func (h *BlockHandlers) PostMove(c *gin.Context) {
	var req struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || (req.Direction != "up" && req.Direction != "down") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be up or down"})
		return
	}

	if err := h.editorService.MoveBlock(c.Param("sessionId"), c.Param("blockId"), req.Direction == "up"); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"moved": true})
}

// PostDuplicate handles POST /api/v1/sessions/:sessionId/blocks/:blockId/duplicate.
func (h *BlockHandlers) PostDuplicate(c *gin.Context) {
	clone, err := h.editorService.DuplicateBlock(c.Param("sessionId"), c.Param("blockId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"block": clone})
}

// Delete handles DELETE /api/v1/sessions/:sessionId/blocks/:blockId.
func (h *BlockHandlers) Delete(c *gin.Context) {
	if err := h.editorService.DeleteBlock(c.Param("sessionId"), c.Param("blockId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
