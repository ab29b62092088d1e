package viewer

import (
	"sync"

	"github.com/google/uuid"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/store"
)

// Session holds the sole piece of interactive state: which landmark, if any,
// is currently selected. It starts with no selection and is never persisted.
// The mutex makes Select atomic under concurrent HTTP handlers; render code
// only ever sees the selection as an explicit value.
type Session struct {
	id      string
	dataset *store.Dataset

	mu         sync.Mutex
	selection  string
	generation uint64
}

// NewSession creates an empty session bound to the dataset it validates
// selections against.
func NewSession(ds *store.Dataset) *Session {
	return &Session{
		id:      uuid.NewString(),
		dataset: ds,
	}
}

// ID returns the session's identifier, used to key published view events.
func (s *Session) ID() string {
	return s.id
}

// Selection returns the currently selected landmark name, or "" for none.
func (s *Session) Selection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Generation counts state changes. Idempotent re-selections do not advance it.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Select updates the selection. An empty name clears it. Selecting the
// already-selected name is a no-op and reports changed=false. Unknown names
// are rejected with store.ErrNotFound and leave the state untouched.
func (s *Session) Select(name string) (changed bool, err error) {
	if name != "" {
		if _, err := s.dataset.Landmark(name); err != nil {
			return false, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == name {
		return false, nil
	}
	s.selection = name
	s.generation++
	return true, nil
}
