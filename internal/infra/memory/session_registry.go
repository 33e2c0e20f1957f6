package memory

import (
	"sync"

	"knlang-arcade/internal/domain"
)

// SessionRegistry is an in-memory implementation of app.SessionRegistry.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]domain.GameKind
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]domain.GameKind),
	}
}

func (r *SessionRegistry) Register(id string, kind domain.GameKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = kind
}

func (r *SessionRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
