package editor

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SaveStatus is the autosave indicator state pushed to the client.
type SaveStatus string

const (
	StatusSaved   SaveStatus = "saved"
	StatusUnsaved SaveStatus = "unsaved"
	StatusSaving  SaveStatus = "saving"
)

// Session is the per-author editing session. It owns the document and the
// two pieces of gesture state that were module-level globals in the legacy
// client: the single active drag and the single open inspector. All access
// goes through Lock/Unlock; HTTP handlers serialize on it so document
// mutations stay atomic the way the single-threaded client guaranteed.
type Session struct {
	ID         string
	AuthorID   string
	Doc        *Document
	SaveStatus SaveStatus
	Created    time.Time
	LastActive time.Time

	activeDrag    *DragState
	openInspector string

	mu sync.Mutex
}

// NewSession creates a session around an empty document.
func NewSession(authorID string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:         ulid.Make().String(),
		AuthorID:   authorID,
		Doc:        NewDocument(),
		SaveStatus: StatusSaved,
		Created:    now,
		LastActive: now,
	}
}

// Lock serializes access to the session and its document.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// Touch records activity for idle-session cleanup.
func (s *Session) Touch() { s.LastActive = time.Now().UTC() }

// OpenInspector records blockID as the single open inspector, implicitly
// closing any other. Returns the id of the inspector that was closed, if
// any.
func (s *Session) OpenInspector(blockID string) string {
	prev := s.openInspector
	s.openInspector = blockID
	if prev == blockID {
		return ""
	}
	return prev
}

// CloseInspector clears the open inspector without touching the document.
func (s *Session) CloseInspector() { s.openInspector = "" }

// InspectorBlockID returns the id of the block currently open in the
// inspector, or "" when none is open.
func (s *Session) InspectorBlockID() string { return s.openInspector }
