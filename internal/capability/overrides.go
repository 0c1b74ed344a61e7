package capability

import "sync"

// OverrideStore holds explicit three-state capability overrides:
// unset, forced true, or forced false. Overrides take precedence over
// both testing defaults and live probing. The store is process-wide
// mutable state with no automatic expiry; callers that set an override
// own clearing it on every exit path (use Scoped for that).
//
// Individual slot reads and writes are atomic with respect to each
// other. A resolution interleaved between two writes may observe a
// partially-updated combination; callers needing atomic multi-slot
// setup must serialize it themselves.
type OverrideStore struct {
	mu     sync.RWMutex
	values map[Capability]bool
}

// Overrides is the process-wide store consulted by default
var Overrides = NewOverrideStore()

// NewOverrideStore creates an empty override store
func NewOverrideStore() *OverrideStore {
	return &OverrideStore{values: make(map[Capability]bool)}
}

// Set forces a capability to a value. Setting a non-overridable
// capability is a no-op; setting is total and idempotent.
func (s *OverrideStore) Set(c Capability, v bool) {
	if !c.Overridable() {
		return
	}
	s.mu.Lock()
	s.values[c] = v
	s.mu.Unlock()
}

// SetTouch forces the touch capability
func (s *OverrideStore) SetTouch(v bool) { s.Set(Touch, v) }

// SetHover forces the hover capability
func (s *OverrideStore) SetHover(v bool) { s.Set(Hover, v) }

// SetHaptics forces the haptics capability
func (s *OverrideStore) SetHaptics(v bool) { s.Set(Haptics, v) }

// Get returns the override for a capability and whether one is set
func (s *OverrideStore) Get(c Capability) (value, ok bool) {
	s.mu.RLock()
	value, ok = s.values[c]
	s.mu.RUnlock()
	return value, ok
}

// Clear removes the override for one capability
func (s *OverrideStore) Clear(c Capability) {
	s.mu.Lock()
	delete(s.values, c)
	s.mu.Unlock()
}

// ClearAll resets every override to unset
func (s *OverrideStore) ClearAll() {
	s.mu.Lock()
	s.values = make(map[Capability]bool)
	s.mu.Unlock()
}

// Scoped sets an override and returns a restore function that puts the
// slot back to its previous state. Intended for defer so the override
// cannot leak past the caller's scope:
//
//	defer store.Scoped(capability.Touch, true)()
func (s *OverrideStore) Scoped(c Capability, v bool) func() {
	prev, had := s.Get(c)
	s.Set(c, v)
	return func() {
		if had {
			s.Set(c, prev)
		} else {
			s.Clear(c)
		}
	}
}
