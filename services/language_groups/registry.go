package language_groups

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrEditorNotFound = errors.New("editor session not found")

// DefaultIdleTimeout is how long a session may go unused before it is dropped.
const DefaultIdleTimeout = 30 * time.Minute

type session struct {
	editor   *Editor
	lastSeen time.Time
}

// Registry tracks open editor sessions by ID. Sessions that are never closed
// are evicted by Run once idle.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	idle     time.Duration
	now      func() time.Time
}

// NewRegistry creates a registry with DefaultIdleTimeout.
func NewRegistry() *Registry {
	return NewRegistryWithTimeout(DefaultIdleTimeout)
}

// NewRegistryWithTimeout creates a registry that evicts sessions idle for
// longer than idle. Non-positive values use DefaultIdleTimeout.
func NewRegistryWithTimeout(idle time.Duration) *Registry {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &Registry{
		sessions: make(map[string]*session),
		idle:     idle,
		now:      time.Now,
	}
}

// Open starts a new editor session and returns its ID.
func (r *Registry) Open(initial [][]string, publisher Publisher) (string, *Editor) {
	id := uuid.NewString()
	editor := NewEditor(initial, publisher)

	r.mu.Lock()
	r.sessions[id] = &session{editor: editor, lastSeen: r.now()}
	r.mu.Unlock()

	return id, editor
}

// Get returns the editor for id and marks the session as used.
func (r *Registry) Get(id string) (*Editor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrEditorNotFound
	}
	s.lastSeen = r.now()
	return s.editor, nil
}

// Close ends a session. Closing an unknown session is a no-op.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Run evicts idle sessions once a minute until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.evictIdle(r.now()); n > 0 {
				log.Printf("[language_groups] evicted %d idle editor sessions", n)
			}
		}
	}
}

func (r *Registry) evictIdle(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.idle {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}
