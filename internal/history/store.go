// Package history keeps the rolling per-container resource history that the
// dashboard graphs are drawn from.
package history

import (
	"sync"

	"github.com/rusenback/dockerdash/internal/model"
)

// Store maps container ids to their resource windows. One mutex covers the
// whole map; callers never do I/O while holding it.
type Store struct {
	mu   sync.Mutex
	sets map[string]*Set
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sets: make(map[string]*Set)}
}

// Append adds m to the window of container id. It returns false when id is
// unknown or m is not newer than the window's last sample.
func (s *Store) Append(id string, m model.DerivedMetric) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[id]
	if !ok {
		return false
	}
	w := set.window(m.Resource)
	if w == nil {
		return false
	}
	return w.push(m)
}

// Reconcile makes the store's membership equal to ids. Windows of surviving
// containers are kept, new containers get empty windows and the rest are
// dropped.
func (s *Store) Reconcile(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]*Set, len(ids))
	for _, id := range ids {
		if set, ok := s.sets[id]; ok {
			next[id] = set
		} else {
			next[id] = &Set{}
		}
	}
	s.sets = next
}

// IDs returns the known container ids in no particular order.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.sets))
	for id := range s.sets {
		ids = append(ids, id)
	}
	return ids
}

// Copy returns deep copies of the windows of the given containers. Unknown
// ids are skipped.
func (s *Store) Copy(ids []string) map[string]Set {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Set, len(ids))
	for _, id := range ids {
		if set, ok := s.sets[id]; ok {
			out[id] = set.clone()
		}
	}
	return out
}

// Len returns the number of tracked containers.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sets)
}
