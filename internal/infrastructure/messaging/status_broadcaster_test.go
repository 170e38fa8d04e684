package messaging

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

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

func waitForSubscriber(t *testing.T, b *StatusBroadcaster, sessionID string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for b.SubscriberCount(sessionID) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSubscriberReceivesStatus(t *testing.T) {
	b := NewStatusBroadcaster(testLogger(t))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := b.Subscribe(w, r, "sess-1"); err != nil {
			t.Errorf("Subscribe: %v", err)
		}
	}))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForSubscriber(t, b, "sess-1")
	b.BroadcastStatus("sess-1", editor.StatusSaving)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg statusMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if msg.Type != "saveStatus" || msg.SessionID != "sess-1" || msg.Status != "saving" {
		t.Errorf("message = %+v", msg)
	}
}

func TestBroadcastStatusNeverBlocksCaller(t *testing.T) {
	b := NewStatusBroadcaster(testLogger(t))

	// Flood well past the queue depth; enqueueing must stay non-blocking
	// whether or not delivery keeps up.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < statusQueueSize*4; i++ {
			b.BroadcastStatus("sess-1", editor.StatusUnsaved)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BroadcastStatus blocked the caller")
	}
}
