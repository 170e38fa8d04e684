// Package stores provides the in-memory editing session store.
package stores

import (
	"sync"
	"time"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
)

// SessionStore holds live editing sessions keyed by id, with a secondary
// author index so a returning author resumes their session instead of
// forking a second document.
type SessionStore struct {
	sessions map[string]*editor.Session
	byAuthor map[string]string // authorID -> sessionID
	mu       sync.RWMutex
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*editor.Session),
		byAuthor: make(map[string]string),
	}
}

// Put registers a session.
func (ss *SessionStore) Put(s *editor.Session) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[s.ID] = s
	ss.byAuthor[s.AuthorID] = s.ID
}

// Get retrieves a session by id.
func (ss *SessionStore) Get(id string) (*editor.Session, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	s, ok := ss.sessions[id]
	return s, ok
}

// GetByAuthor retrieves an author's live session, if any.
func (ss *SessionStore) GetByAuthor(authorID string) (*editor.Session, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	id, ok := ss.byAuthor[authorID]
	if !ok {
		return nil, false
	}
	s, ok := ss.sessions[id]
	return s, ok
}

// Remove drops a session from the store.
func (ss *SessionStore) Remove(id string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if s, ok := ss.sessions[id]; ok {
		delete(ss.byAuthor, s.AuthorID)
		delete(ss.sessions, id)
	}
}

// All returns every live session.
func (ss *SessionStore) All() []*editor.Session {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	out := make([]*editor.Session, 0, len(ss.sessions))
	for _, s := range ss.sessions {
		out = append(out, s)
	}
	return out
}

// ExpiredSince returns ids of sessions idle longer than ttl. LastActive is
// written under the session lock, so it is read the same way.
func (ss *SessionStore) ExpiredSince(ttl time.Duration) []string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	cutoff := time.Now().UTC().Add(-ttl)
	var expired []string
	for id, s := range ss.sessions {
		s.Lock()
		idle := s.LastActive.Before(cutoff)
		s.Unlock()
		if idle {
			expired = append(expired, id)
		}
	}
	return expired
}

// Count returns the number of live sessions.
func (ss *SessionStore) Count() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}
