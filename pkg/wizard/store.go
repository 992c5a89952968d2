package wizard

import "sync"

// Store keeps live wizard sessions in memory, keyed by session ID. Each
// session owns its own state; the store only guards the map itself.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Add registers a session under its ID.
func (st *Store) Add(session *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sessions[session.ID] = session
}

// Get looks up a session by ID.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[id]

	return session, ok
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, id)
}
