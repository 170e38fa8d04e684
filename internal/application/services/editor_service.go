package services

import (
	"fmt"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/domain/registry"
	"github.com/UniScopeHQ/composer-go/internal/domain/repositories"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/caching/stores"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/messaging"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// EditorService owns the lifecycle of editing sessions and every canvas
// mutation: block insertion, reordering, duplication, deletion, and the
// drag gestures that drive them. Mutations run under the session lock and
// flip the save status to unsaved for autosave to pick up.
type EditorService struct {
	sessions    *stores.SessionStore
	drafts      repositories.DraftRepository
	broadcaster *messaging.StatusBroadcaster
	logger      *logging.ChanneledLogger
}

// NewEditorService creates the editor service.
func NewEditorService(sessions *stores.SessionStore, drafts repositories.DraftRepository, broadcaster *messaging.StatusBroadcaster, logger *logging.ChanneledLogger) *EditorService {
	return &EditorService{
		sessions:    sessions,
		drafts:      drafts,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// OpenSession returns the author's live session, creating one if needed.
// A new session restores the author's stored draft when one exists; a
// draft that fails to parse is logged and discarded so the author still
// gets a working empty canvas.
func (s *EditorService) OpenSession(authorID string) (*editor.Session, bool, error) {
	if existing, ok := s.sessions.GetByAuthor(authorID); ok {
		existing.Lock()
		existing.Touch()
		existing.Unlock()
		return existing, false, nil
	}

	session := editor.NewSession(authorID)
	restored := false

	snapshot, found, err := s.drafts.Load(authorID)
	if err != nil {
		s.logger.Draft().Warn("Draft restore failed, starting with empty canvas",
			"authorId", authorID, "error", err.Error())
	} else if found {
		session.Doc = editor.FromSnapshot(snapshot)
		restored = true
		s.logger.Draft().Info("Draft restored",
			"authorId", authorID, "blocks", session.Doc.Len())
	}

	s.sessions.Put(session)
	s.logger.Editor().Info("Editing session opened",
		"sessionId", session.ID, "authorId", authorID, "restored", restored)
	return session, restored, nil
}

// Session resolves a session id.
func (s *EditorService) Session(sessionID string) (*editor.Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// CloseSession discards the in-memory session. The stored draft survives.
func (s *EditorService) CloseSession(sessionID string) {
	s.sessions.Remove(sessionID)
	s.logger.Editor().Info("Editing session closed", "sessionId", sessionID)
}

// InsertBlock creates a block of the given type at atIndex, seeded with the
// type's default content template. A negative index appends.
func (s *EditorService) InsertBlock(sessionID string, t editor.BlockType, atIndex int) (*editor.Block, error) {
	content, ok := registry.TemplateFor(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBlockType, t)
	}

	session, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()

	block := session.Doc.Insert(t, content, editor.DefaultStyle(), atIndex)
	s.markUnsaved(session)

	s.logger.Editor().Debug("Block inserted",
		"sessionId", sessionID, "blockId", block.ID, "type", string(t))
	return block, nil
}

// UpdateBlock merges content and style patches into a block.
func (s *EditorService) UpdateBlock(sessionID, blockID string, content *editor.ContentPatch, style *editor.StylePatch) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()

	changed, ok := session.Doc.Update(blockID, content, style)
	if !ok {
		return ErrBlockNotFound
	}
	if changed {
		s.markUnsaved(session)
	}
	return nil
}

// MoveBlock shifts a block one position up or down. Boundary moves are
// accepted and do nothing.
func (s *EditorService) MoveBlock(sessionID, blockID string, up bool) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()

	if _, ok := session.Doc.BlockByID(blockID); !ok {
		return ErrBlockNotFound
	}

	moved := false
	if up {
		moved = session.Doc.MoveUp(blockID)
	} else {
		moved = session.Doc.MoveDown(blockID)
	}
	if moved {
		s.markUnsaved(session)
	}
	return nil
}

// DuplicateBlock clones a block under a fresh id directly below the source.
func (s *EditorService) DuplicateBlock(sessionID, blockID string) (*editor.Block, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()

	clone, ok := session.Doc.Duplicate(blockID)
	if !ok {
		return nil, ErrBlockNotFound
	}
	s.markUnsaved(session)

	s.logger.Editor().Debug("Block duplicated",
		"sessionId", sessionID, "sourceId", blockID, "cloneId", clone.ID)
	return clone, nil
}

// DeleteBlock removes a block. Deleting a block also closes its inspector
// if it was the one open.
func (s *EditorService) DeleteBlock(sessionID, blockID string) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()

	if !session.Doc.Delete(blockID) {
		return ErrBlockNotFound
	}
	if session.InspectorBlockID() == blockID {
		session.CloseInspector()
	}
	s.markUnsaved(session)
	return nil
}

// SetMetadata replaces the document-level post fields.
func (s *EditorService) SetMetadata(sessionID string, meta editor.Metadata) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()

	session.Doc.SetMeta(meta)
	s.markUnsaved(session)
	return nil
}

// BeginPaletteDrag starts a palette drag carrying a block type.
func (s *EditorService) BeginPaletteDrag(sessionID string, t editor.BlockType) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownBlockType, t)
	}
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()
	session.BeginPaletteDrag(t)
	return nil
}

// BeginBlockDrag starts a reorder drag for an existing block.
func (s *EditorService) BeginBlockDrag(sessionID, blockID string) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()

	if _, ok := session.Doc.BlockByID(blockID); !ok {
		return ErrBlockNotFound
	}
	session.BeginBlockDrag(blockID)
	return nil
}

// Drop completes the active drag over targetID. An empty target is the
// open canvas. Without an active drag the drop is a no-op, matching a
// stray drop event after drag-end.
func (s *EditorService) Drop(sessionID, targetID string) (editor.DropResult, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return editor.DropResult{}, err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()

	drag := session.ActiveDrag()
	if drag == nil {
		return editor.DropResult{}, nil
	}

	var content editor.Content
	style := editor.DefaultStyle()
	if drag.Mode == editor.DragPalette {
		c, ok := registry.TemplateFor(drag.BlockType)
		if !ok {
			session.EndDrag()
			return editor.DropResult{}, fmt.Errorf("%w: %s", ErrUnknownBlockType, drag.BlockType)
		}
		content = c
	}

	result := session.Drop(targetID, content, style)
	if result.Inserted != nil || result.Moved {
		s.markUnsaved(session)
	}
	return result, nil
}

// EndDrag clears the active drag unconditionally.
func (s *EditorService) EndDrag(sessionID string) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()
	session.Touch()
	session.EndDrag()
	return nil
}

// markUnsaved flips the save indicator and notifies subscribers. Callers
// hold the session lock.
func (s *EditorService) markUnsaved(session *editor.Session) {
	if session.SaveStatus != editor.StatusUnsaved {
		session.SaveStatus = editor.StatusUnsaved
		if s.broadcaster != nil {
			s.broadcaster.BroadcastStatus(session.ID, editor.StatusUnsaved)
		}
	}
}
