// ABOUTME: Registry of mounted dashboard shells and their expansion state
// ABOUTME: State lives in memory from Mount until Unmount and is never persisted

package nav

import (
	"log/slog"
	"sync"
)

// Shells tracks the expansion state of every mounted shell, keyed by an
// opaque shell ID (the dashboard uses a per-browser cookie).
type Shells struct {
	mu     sync.Mutex
	shells map[string]*Expansion
	logger *slog.Logger
}

// NewShells creates an empty registry.
func NewShells() *Shells {
	return &Shells{
		shells: make(map[string]*Expansion),
		logger: slog.Default().With("component", "nav"),
	}
}

// Mount returns the state for id, creating a collapsed one on first use.
func (s *Shells) Mount(id string) *Expansion {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.shells[id]; ok {
		return e
	}
	e := NewExpansion()
	s.shells[id] = e
	s.logger.Debug("shell mounted", "shells", len(s.shells))
	return e
}

// Unmount drops the state for id.
func (s *Shells) Unmount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shells[id]; !ok {
		return
	}
	delete(s.shells, id)
	s.logger.Debug("shell unmounted", "shells", len(s.shells))
}

// Len returns the number of mounted shells.
func (s *Shells) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shells)
}
