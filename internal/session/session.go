// Package session holds per-conversation history. Each session is keyed by
// an opaque ID supplied by the transport (HTTP session_id, Discord
// channel:user), so concurrent conversations never leak into each other.
package session

import "sync"

// Turn is one completed exchange. Query is stored as received, not
// normalized.
type Turn struct {
	Query    string
	Response string
}

// Session is the ordered history of one conversation. Turns are appended
// after every exchange except a farewell, which clears the whole history.
type Session struct {
	turns []Turn
}

// Turns returns the history oldest-first. The returned slice must be treated
// as read-only.
func (s *Session) Turns() []Turn {
	return s.turns
}

// Len returns the number of recorded turns.
func (s *Session) Len() int {
	return len(s.turns)
}

// Store manages sessions by ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating an empty one if needed.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		s = &Session{}
		st.sessions[id] = s
	}
	return s
}

// Turns returns a copy of the history for id, oldest-first.
func (st *Store) Turns(id string) []Turn {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil
	}
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Append records a completed turn for id.
func (st *Store) Append(id string, turn Turn) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		s = &Session{}
		st.sessions[id] = s
	}
	s.turns = append(s.turns, turn)
}

// Clear empties the history for id. The session stays registered so a
// conversation can continue after a farewell.
func (st *Store) Clear(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[id]; ok {
		s.turns = nil
	}
}

// Remove drops the session entirely, for transport-level session teardown.
func (st *Store) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Count returns the number of active sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
