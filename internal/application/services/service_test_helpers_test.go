package services

import (
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/caching/stores"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// fakeDraftRepo is an in-memory DraftRepository with error injection.
type fakeDraftRepo struct {
	mu      sync.Mutex
	saved   map[string]*editor.Snapshot
	saves   int
	failing bool
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{saved: make(map[string]*editor.Snapshot)}
}

func (f *fakeDraftRepo) Save(authorID string, snapshot *editor.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("disk full")
	}
	f.saved[authorID] = snapshot
	f.saves++
	return nil
}

func (f *fakeDraftRepo) Load(authorID string) (*editor.Snapshot, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.saved[authorID]
	return s, ok, nil
}

func (f *fakeDraftRepo) Delete(authorID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.saved, authorID)
	return nil
}

func (f *fakeDraftRepo) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

// testLogger builds a quiet channeled logger for tests.
func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToFile = false
	cfg.OutputToConsole = false
	cfg.DefaultLevel = slog.LevelError
	logger, err := logging.NewChanneledLogger(cfg)
	if err != nil {
		t.Fatalf("failed to build test logger: %v", err)
	}
	return logger
}

// newTestEditor wires an editor service over in-memory stores.
func newTestEditor(t *testing.T) (*EditorService, *fakeDraftRepo) {
	t.Helper()
	repo := newFakeDraftRepo()
	svc := NewEditorService(stores.NewSessionStore(), repo, nil, testLogger(t))
	return svc, repo
}
