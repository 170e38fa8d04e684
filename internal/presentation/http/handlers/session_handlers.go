package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
	"github.com/UniScopeHQ/composer-go/internal/presentation/http/middleware"
)

// SessionHandlers covers session lifecycle, document metadata, and the
// explicit save and draft-discard operations.
type SessionHandlers struct {
	editorService   *services.EditorService
	autosaveService *services.AutosaveService
	logger          *logging.ChanneledLogger
}

// NewSessionHandlers creates session handlers with injected dependencies.
func NewSessionHandlers(editorService *services.EditorService, autosaveService *services.AutosaveService, logger *logging.ChanneledLogger) *SessionHandlers {
	return &SessionHandlers{
		editorService:   editorService,
		autosaveService: autosaveService,
		logger:          logger,
	}
}

// PostOpen handles POST /api/v1/sessions - opens (or resumes) the
// author's editing session, restoring their draft when one exists.
func (h *SessionHandlers) PostOpen(c *gin.Context) {
	authorID, ok := middleware.GetAuthorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	session, restored, err := h.editorService.OpenSession(authorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":  newSessionView(session),
		"restored": restored,
	})
}

// GetSession handles GET /api/v1/sessions/:sessionId - current canvas state.
func (h *SessionHandlers) GetSession(c *gin.Context) {
	session, err := h.editorService.Session(c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": newSessionView(session)})
}

// DeleteSession handles DELETE /api/v1/sessions/:sessionId - closes the
// session. The stored draft is untouched.
func (h *SessionHandlers) DeleteSession(c *gin.Context) {
	h.editorService.CloseSession(c.Param("sessionId"))
	c.JSON(http.StatusOK, gin.H{"closed": true})
}

// PutMetadata handles PUT /api/v1/sessions/:sessionId/meta - replaces the
// post-level fields.
func (h *SessionHandlers) PutMetadata(c *gin.Context) {
	var meta editor.Metadata
	if err := c.ShouldBindJSON(&meta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.editorService.SetMetadata(c.Param("sessionId"), meta); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// PostSave handles POST /api/v1/sessions/:sessionId/save - explicit save,
// same path autosave takes on its timer.
func (h *SessionHandlers) PostSave(c *gin.Context) {
	session, err := h.editorService.Session(c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.autosaveService.SaveSession(session)

	session.Lock()
	status := session.SaveStatus
	session.Unlock()
	c.JSON(http.StatusOK, gin.H{"saveStatus": status})
}

// DeleteDraft handles DELETE /api/v1/drafts - discards the author's
// stored draft without touching the live session.
func (h *SessionHandlers) DeleteDraft(c *gin.Context) {
	authorID, ok := middleware.GetAuthorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.autosaveService.DiscardDraft(authorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
