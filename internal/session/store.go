package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = fmt.Errorf("session not found")

type entry struct {
	state    State
	lastSeen time.Time
}

// Store keeps one State per browser session. Each session has a single
// logical writer (one trigger per render cycle); the mutex only protects
// the map across sessions.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
}

// NewStore creates a session store. Sessions idle for longer than ttl are
// dropped on the next sweep.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*entry),
		ttl:     ttl,
	}
}

// Create registers a fresh session with default state and returns its ID.
func (st *Store) Create() (string, State) {
	id := newSessionID()
	state := DefaultState()

	st.mu.Lock()
	st.entries[id] = &entry{state: state, lastSeen: time.Now()}
	st.mu.Unlock()

	return id, state
}

// Get returns the state for a session and refreshes its idle timer.
func (st *Store) Get(id string) (State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.entries[id]
	if !ok {
		return State{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	e.lastSeen = time.Now()
	return e.state, nil
}

// Put stores the new state for an existing session.
func (st *Store) Put(id string, s State) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	e.state = s
	e.lastSeen = time.Now()
	return nil
}

// Sweep drops sessions idle for longer than the store TTL and returns how
// many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := time.Now().Add(-st.ttl)
	removed := 0
	for id, e := range st.entries {
		if e.lastSeen.Before(cutoff) {
			delete(st.entries, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until stop is closed.
func (st *Store) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				st.Sweep()
			case <-stop:
				return
			}
		}
	}()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.entries)
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in real trouble
		panic(fmt.Sprintf("session: rand.Read: %v", err))
	}
	return hex.EncodeToString(buf)
}
