// Package session keeps the in-memory editing sessions. Each browser
// session maps to one invoice editor; nothing survives a restart.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/javierDev03/invoices/internal/invoice"
)

// DefaultTTL is how long an idle session is kept before the sweeper
// drops it.
const DefaultTTL = 2 * time.Hour

type entry struct {
	editor   *invoice.Editor
	lastSeen time.Time
}

// Store holds editors keyed by session id. The mutex guards the map
// across concurrent HTTP requests; each editor itself is only ever
// driven by its own session's sequential edits.
type Store struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry

	ttl time.Duration
	now func() time.Time
}

// NewStore creates a store that drops sessions idle for longer than ttl.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		entries: make(map[uuid.UUID]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create starts a new editing session and returns its id and editor.
func (s *Store) Create() (uuid.UUID, *invoice.Editor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := uuid.New()
	editor := invoice.NewEditor(now)
	s.entries[id] = &entry{editor: editor, lastSeen: now}

	s.sweepLocked(now)

	return id, editor
}

// Get returns the editor for a session id, refreshing its idle timer.
func (s *Store) Get(id uuid.UUID) (*invoice.Editor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}

	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.entries, id)
		return nil, false
	}

	e.lastSeen = now

	return e.editor, true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *Store) sweepLocked(now time.Time) {
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, id)
		}
	}
}
