// Package messaging pushes save-status changes to connected editor clients
// over WebSocket.
package messaging

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/UniScopeHQ/composer-go/internal/domain/entities/editor"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// writeWait bounds how long a single status write may stall on a slow
// subscriber before the connection is dropped.
const writeWait = 5 * time.Second

// statusQueueSize is the dispatch queue depth. The indicator is
// latest-wins, so overflow drops are harmless.
const statusQueueSize = 256

// statusMessage is the wire format sent to clients.
type statusMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Status    string `json:"status"`
}

// statusEvent is a queued status change awaiting delivery.
type statusEvent struct {
	sessionID string
	status    editor.SaveStatus
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StatusBroadcaster fans save-status updates out to the WebSocket
// connections subscribed to each session. Delivery runs on its own
// goroutine; callers only enqueue, so a stalled subscriber never blocks a
// document mutation holding the session lock.
type StatusBroadcaster struct {
	subscribers map[string]map[*websocket.Conn]bool // sessionID -> conns
	events      chan statusEvent
	mu          sync.RWMutex
	logger      *logging.ChanneledLogger
}

// NewStatusBroadcaster creates an empty broadcaster and starts its dispatch
// goroutine.
func NewStatusBroadcaster(logger *logging.ChanneledLogger) *StatusBroadcaster {
	b := &StatusBroadcaster{
		subscribers: make(map[string]map[*websocket.Conn]bool),
		events:      make(chan statusEvent, statusQueueSize),
		logger:      logger,
	}
	go b.dispatch()
	return b
}

// Subscribe upgrades the request to a WebSocket and registers it for a
// session's status updates. The connection is held open until the client
// closes it; reads are drained so close frames are processed.
func (b *StatusBroadcaster) Subscribe(w http.ResponseWriter, r *http.Request, sessionID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	b.mu.Lock()
	if b.subscribers[sessionID] == nil {
		b.subscribers[sessionID] = make(map[*websocket.Conn]bool)
	}
	b.subscribers[sessionID][conn] = true
	b.mu.Unlock()

	b.logger.Editor().Debug("Status subscriber connected", "sessionId", sessionID)

	go b.drain(sessionID, conn)
	return nil
}

// drain consumes incoming frames until the connection dies, then
// unregisters it.
func (b *StatusBroadcaster) drain(sessionID string, conn *websocket.Conn) {
	defer b.remove(sessionID, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (b *StatusBroadcaster) remove(sessionID string, conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if conns, ok := b.subscribers[sessionID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(b.subscribers, sessionID)
		}
	}
	conn.Close()
}

// BroadcastStatus queues a session's save status for delivery. It never
// blocks: callers hold the session lock, and the slow-subscriber case is
// exactly the one this must survive.
func (b *StatusBroadcaster) BroadcastStatus(sessionID string, status editor.SaveStatus) {
	select {
	case b.events <- statusEvent{sessionID: sessionID, status: status}:
	default:
		b.logger.Editor().Warn("Status queue full, dropping update",
			"sessionId", sessionID, "status", string(status))
	}
}

// dispatch delivers queued status events for the life of the process.
func (b *StatusBroadcaster) dispatch() {
	for ev := range b.events {
		b.send(ev.sessionID, ev.status)
	}
}

// send pushes one status to a session's subscribers. Connections that fail
// to write within writeWait are dropped.
func (b *StatusBroadcaster) send(sessionID string, status editor.SaveStatus) {
	msg := statusMessage{
		Type:      "saveStatus",
		SessionID: sessionID,
		Status:    string(status),
	}

	b.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(b.subscribers[sessionID]))
	for conn := range b.subscribers[sessionID] {
		conns = append(conns, conn)
	}
	b.mu.RUnlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			b.logger.Editor().Debug("Dropping dead status subscriber",
				"sessionId", sessionID, "error", err.Error())
			b.remove(sessionID, conn)
		}
	}
}

// SubscriberCount reports how many connections follow a session.
func (b *StatusBroadcaster) SubscriberCount(sessionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[sessionID])
}
