// Package cleanup provides the idle session reaper.
package cleanup

import (
	"context"
	"time"

	"github.com/UniScopeHQ/composer-go/internal/infrastructure/caching/stores"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// Config carries the worker's timing parameters.
type Config struct {
	Interval   time.Duration
	SessionTTL time.Duration
}

// Worker evicts editing sessions that have been idle past their TTL. A draft
// saved by autosave survives eviction; only the in-memory session goes away.
type Worker struct {
	sessions *stores.SessionStore
	config   *Config
	logger   *logging.ChanneledLogger
}

// NewWorker creates a session cleanup worker with injected configuration.
func NewWorker(sessions *stores.SessionStore, config *Config, logger *logging.ChanneledLogger) *Worker {
	return &Worker{
		sessions: sessions,
		config:   config,
		logger:   logger,
	}
}

// Start begins the cleanup loop, using the configured interval.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	w.logger.System().Info("Session cleanup worker started",
		"interval", w.config.Interval.String(),
		"sessionTTL", w.config.SessionTTL.String())

	for {
		select {
		case <-ctx.Done():
			w.logger.Shutdown().Info("Session cleanup worker stopping")
			return
		case <-ticker.C:
			w.performCleanup()
		}
	}
}

// performCleanup evicts every session idle longer than the TTL.
func (w *Worker) performCleanup() {
	start := time.Now()
	expired := w.sessions.ExpiredSince(w.config.SessionTTL)
	for _, id := range expired {
		w.sessions.Remove(id)
	}

	if len(expired) > 0 {
		w.logger.System().Info("Session cleanup finished",
			"evicted", len(expired),
			"remaining", w.sessions.Count(),
			"duration", time.Since(start).String())
	}
}
