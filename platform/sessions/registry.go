package sessions

import (
	"context"
	"sync"

	"github.com/DedS3t/monopoly-engine/platform/engine"
)

// Session pairs a running game with its cancel handle.
type Session struct {
	Game   *engine.Game
	Cancel context.CancelFunc
}

// Registry is the in-memory index of live game sessions, shared by the HTTP
// controllers and the socket server. Sessions are never persisted.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

var registry = &Registry{sessions: make(map[string]*Session)}

func Put(id string, s *Session) {
	registry.mu.Lock()
	registry.sessions[id] = s
	registry.mu.Unlock()
}

func Get(id string) (*Session, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	s, ok := registry.sessions[id]
	return s, ok
}

func Delete(id string) {
	registry.mu.Lock()
	if s, ok := registry.sessions[id]; ok && s.Cancel != nil {
		s.Cancel()
	}
	delete(registry.sessions, id)
	registry.mu.Unlock()
}
