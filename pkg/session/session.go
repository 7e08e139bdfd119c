// Package session holds per-conversation state shared between the routing
// engine and downstream handlers.
//
// Mutation points are deliberately narrow: the engine increments the turn
// counter on every routed message, and whichever handler presents a numbered
// menu must publish the option list via SetMenuOptions before the next turn —
// that write-back is the only coupling between the engine and the rest of the
// system. Calls within one session must be serialized by the caller; calls
// for independent sessions are safe to run concurrently.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// State is the mutable per-conversation record. It lives in memory for the
// duration of the conversation and is not expected to survive restarts.
type State struct {
	id              string
	turnCount       int
	lastMenuOptions []string
}

// NewState creates a session with a fresh ID and no presented menu.
func NewState() *State {
	return &State{id: uuid.NewString()}
}

// ID returns the session identifier.
func (s *State) ID() string { return s.id }

// TurnCount returns the number of messages routed in this session.
func (s *State) TurnCount() int { return s.turnCount }

// IncrementTurn advances the turn counter. Called by the routing engine once
// per message.
func (s *State) IncrementTurn() { s.turnCount++ }

// MenuOptions returns a copy of the most recently presented option list, in
// presentation order. Empty when no menu is pending.
func (s *State) MenuOptions() []string {
	out := make([]string, len(s.lastMenuOptions))
	copy(out, s.lastMenuOptions)
	return out
}

// SetMenuOptions publishes a freshly presented menu. Called by the handler
// that displayed it, never by the engine.
func (s *State) SetMenuOptions(options []string) {
	s.lastMenuOptions = make([]string, len(options))
	copy(s.lastMenuOptions, options)
}

// ClearMenuOptions discards the pending menu.
func (s *State) ClearMenuOptions() { s.lastMenuOptions = nil }

// Manager is an in-memory session registry keyed by session ID. Only the
// registry itself is synchronized; individual sessions follow the
// one-caller-at-a-time contract above.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*State)}
}

// Create registers and returns a new session.
func (m *Manager) Create() *State {
	s := NewState()
	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// GetOrCreate returns the session with the given ID, registering a new one
// under that ID if absent.
func (m *Manager) GetOrCreate(id string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := &State{id: id}
	m.sessions[id] = s
	return s
}

// Delete discards the session with the given ID.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
