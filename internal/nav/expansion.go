// ABOUTME: Per-shell expand/collapse state for sidebar groups
// ABOUTME: Toggle flips exactly one key; all groups start collapsed

package nav

import "sync"

// Expansion maps group keys to their expanded flag. The zero value is not
// usable; create one with NewExpansion.
type Expansion struct {
	mu       sync.RWMutex
	expanded map[Key]bool
}

// NewExpansion returns state with every group collapsed.
func NewExpansion() *Expansion {
	return &Expansion{expanded: make(map[Key]bool)}
}

// Toggle flips the state of key and returns the new value.
func (e *Expansion) Toggle(key Key) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := !e.expanded[key]
	if v {
		e.expanded[key] = true
	} else {
		delete(e.expanded, key)
	}
	return v
}

// Expanded reports whether key is expanded.
func (e *Expansion) Expanded(key Key) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.expanded[key]
}

// Snapshot returns the expanded keys.
func (e *Expansion) Snapshot() map[Key]bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make(map[Key]bool, len(e.expanded))
	for k, v := range e.expanded {
		out[k] = v
	}
	return out
}
