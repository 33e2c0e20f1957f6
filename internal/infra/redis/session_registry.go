package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"knlang-arcade/internal/domain"
)

// SessionRegistry is a Redis-aware implementation of app.SessionRegistry.
// Notes:
//   - The authoritative set of sessions lives in a local map; each game session
//     is owned by the process serving its connection.
//   - Redis holds a liveness key per session (value = game kind) so operators can
//     see what every instance is hosting.
type SessionRegistry struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]domain.GameKind
}

func NewSessionRegistry(client *redis.Client, ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]domain.GameKind),
	}
}

func (r *SessionRegistry) Register(id string, kind domain.GameKind) {
	r.mu.Lock()
	r.sessions[id] = kind
	r.mu.Unlock()
	// best-effort liveness marker
	_ = r.client.Set(context.Background(), r.key(id), string(kind), r.ttl).Err()
}

func (r *SessionRegistry) Unregister(id string) {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return
	}
	_ = r.client.Del(context.Background(), r.key(id)).Err()
}

func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Touch extends the liveness key of a session that is still being played.
func (r *SessionRegistry) Touch(ctx context.Context, id string) error {
	r.mu.RLock()
	_, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return domain.ErrUnknownSession
	}
	return r.client.Expire(ctx, r.key(id), r.ttl).Err()
}

func (r *SessionRegistry) key(id string) string {
	return "arcade:session:" + id
}
