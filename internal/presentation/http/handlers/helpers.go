// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
)

// respondError maps service errors onto HTTP status codes with a uniform
// error envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrBlockNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnknownBlockType),
		errors.Is(err, services.ErrMissingTitle),
		errors.Is(err, services.ErrMissingSlug),
		errors.Is(err, services.ErrMissingAuthor):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidLogin):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// sessionView is the session state returned to the editor client.
type sessionView struct {
	SessionID  string            `json:"sessionId"`
	AuthorID   string            `json:"authorId"`
	Meta       editor.Metadata   `json:"meta"`
	Blocks     []*editor.Block   `json:"blocks"`
	SaveStatus editor.SaveStatus `json:"saveStatus"`
	IsEmpty    bool              `json:"isEmpty"`
}

// newSessionView snapshots a session for JSON responses. Callers must not
// hold the session lock.
func newSessionView(session *editor.Session) sessionView {
	session.Lock()
	defer session.Unlock()
	return sessionView{
		SessionID:  session.ID,
		AuthorID:   session.AuthorID,
		Meta:       session.Doc.Meta,
		Blocks:     session.Doc.Blocks(),
		SaveStatus: session.SaveStatus,
		IsEmpty:    session.Doc.IsEmpty(),
	}
}
