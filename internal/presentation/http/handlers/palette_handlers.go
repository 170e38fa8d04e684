package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/domain/registry"
)

// paletteEntry is one draggable block type in the sidebar palette.
type paletteEntry struct {
	Type     editor.BlockType `json:"type"`
	Editable bool             `json:"editable"`
}

// PaletteHandlers serves the static block registry data the editor UI
// builds its sidebar and inspector forms from.
type PaletteHandlers struct{}

// NewPaletteHandlers creates palette handlers.
func NewPaletteHandlers() *PaletteHandlers {
	return &PaletteHandlers{}
}

// GetPalette handles GET /api/v1/palette - the block types in palette
// order.
func (h *PaletteHandlers) GetPalette(c *gin.Context) {
	entries := make([]paletteEntry, 0, len(editor.AllBlockTypes))
	for _, t := range editor.AllBlockTypes {
		_, editable := registry.EditSchemaFor(t)
		entries = append(entries, paletteEntry{Type: t, Editable: editable})
	}
	c.JSON(http.StatusOK, gin.H{"palette": entries, "fontFamilies": registry.FontFamilies})
}

// GetSchema handles GET /api/v1/palette/:type/schema - the inspector form
// schema for one block type.
func (h *PaletteHandlers) GetSchema(c *gin.Context) {
	t := editor.BlockType(c.Param("type"))
	fields, ok := registry.EditSchemaFor(t)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown block type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": t, "fields": fields})
}
