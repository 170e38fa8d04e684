package services

import (
	"context"
	"time"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/domain/repositories"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/caching/stores"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/messaging"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// AutosaveService writes dirty documents to the draft store on a fixed
// interval. Each author holds one draft slot; every save overwrites it.
// A failed save leaves the document dirty so the next tick retries.
type AutosaveService struct {
	sessions    *stores.SessionStore
	drafts      repositories.DraftRepository
	broadcaster *messaging.StatusBroadcaster
	logger      *logging.ChanneledLogger
	interval    time.Duration
}

// NewAutosaveService creates the autosave service.
func NewAutosaveService(sessions *stores.SessionStore, drafts repositories.DraftRepository, broadcaster *messaging.StatusBroadcaster, logger *logging.ChanneledLogger, interval time.Duration) *AutosaveService {
	return &AutosaveService{
		sessions:    sessions,
		drafts:      drafts,
		broadcaster: broadcaster,
		logger:      logger,
		interval:    interval,
	}
}

// Start runs the autosave loop until the context is cancelled.
func (s *AutosaveService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Draft().Info("Autosave loop started", "interval", s.interval.String())

	for {
		select {
		case <-ctx.Done():
			s.logger.Shutdown().Info("Autosave loop stopping, flushing dirty documents")
			s.tick()
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick saves every session whose document changed since its last save.
func (s *AutosaveService) tick() {
	for _, session := range s.sessions.All() {
		s.SaveSession(session)
	}
}

// SaveSession persists one session's document if it is dirty. Also serves
// the explicit save endpoint.
func (s *AutosaveService) SaveSession(session *editor.Session) {
	session.Lock()
	if !session.Doc.Dirty() {
		session.Unlock()
		return
	}
	session.SaveStatus = editor.StatusSaving
	snapshot := session.Doc.Snapshot()
	authorID := session.AuthorID
	sessionID := session.ID
	session.Unlock()

	s.broadcast(sessionID, editor.StatusSaving)

	err := s.drafts.Save(authorID, snapshot)

	session.Lock()
	if err != nil {
		session.SaveStatus = editor.StatusUnsaved
		session.Unlock()
		s.logger.Draft().Error("Draft save failed",
			"sessionId", sessionID, "authorId", authorID, "error", err.Error())
		s.broadcast(sessionID, editor.StatusUnsaved)
		return
	}
	// An edit that landed while the write was in flight flips the status
	// back to unsaved; leave the dirty flag set so the next tick catches it.
	saved := session.SaveStatus == editor.StatusSaving
	if saved {
		session.Doc.ClearDirty()
		session.SaveStatus = editor.StatusSaved
	}
	session.Unlock()

	if !saved {
		return
	}

	s.logger.Draft().Debug("Draft saved",
		"sessionId", sessionID, "authorId", authorID, "blocks", len(snapshot.Blocks))
	s.broadcast(sessionID, editor.StatusSaved)
}

func (s *AutosaveService) broadcast(sessionID string, status editor.SaveStatus) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastStatus(sessionID, status)
	}
}

// DiscardDraft deletes the author's stored draft.
func (s *AutosaveService) DiscardDraft(authorID string) error {
	return s.drafts.Delete(authorID)
}
