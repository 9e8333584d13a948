package web

import (
	"context"
	"sync"
	"time"

	"sahayak-agent/engine"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EngineFactory builds a fresh conversation engine for a new session.
type EngineFactory func() *engine.Engine

type sessionEntry struct {
	engine     *engine.Engine
	lastAccess time.Time
}

// SessionRegistry maps session IDs to independent conversation engines. All
// conversation state lives here, in memory; sessions do not survive a
// restart.
type SessionRegistry struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*sessionEntry
	factory EngineFactory
	logger  *zap.Logger
}

func NewSessionRegistry(factory EngineFactory, logger *zap.Logger) *SessionRegistry {
	return &SessionRegistry{
		entries: make(map[uuid.UUID]*sessionEntry),
		factory: factory,
		logger:  logger,
	}
}

// Get returns the engine for a session, creating one on first use, and
// refreshes the access time.
func (r *SessionRegistry) Get(sessionID uuid.UUID) *engine.Engine {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok {
		entry = &sessionEntry{engine: r.factory()}
		r.entries[sessionID] = entry
		r.logger.Info("Created conversation session", zap.String("session_id", sessionID.String()))
	}
	entry.lastAccess = time.Now()
	return entry.engine
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// evictIdle drops sessions untouched for longer than maxAge and returns the
// eviction count.
func (r *SessionRegistry) evictIdle(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, entry := range r.entries {
		if entry.lastAccess.Before(cutoff) {
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}

// StartCleanup runs periodic idle-session eviction until the context ends.
func (r *SessionRegistry) StartCleanup(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := r.evictIdle(maxAge); evicted > 0 {
				r.logger.Info("Evicted idle sessions", zap.Int("count", evicted))
			}
		}
	}
}
