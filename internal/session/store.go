package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

var (
	ErrNotFound = errors.New("session: not found")
	// ErrFull is returned by Create when MaxSessions live sessions already exist.
	ErrFull = errors.New("session: store is full")
)

const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 10000
)

type entry struct {
	state   *State
	touched time.Time
}

// Store keeps one State per session id. States are never shared between ids.
// A session idle for longer than TTL is dropped by Sweep or when Create needs
// room; a zero TTL or MaxSessions disables that limit.
type Store struct {
	TTL         time.Duration
	MaxSessions int

	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		TTL:         DefaultTTL,
		MaxSessions: DefaultMaxSessions,
		sessions:    make(map[string]*entry),
		now:         time.Now,
	}
}

func (st *Store) Create() (string, State, error) {
	id, err := newID()
	if err != nil {
		return "", State{}, err
	}
	s := New()
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.MaxSessions > 0 && len(st.sessions) >= st.MaxSessions {
		st.sweepLocked()
		if len(st.sessions) >= st.MaxSessions {
			return "", State{}, ErrFull
		}
	}
	st.sessions[id] = &entry{state: s, touched: st.now()}
	return id, *s, nil
}

// Get returns a copy of the session's state and marks it as used.
func (st *Store) Get(id string) (State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.live(id)
	if !ok {
		return State{}, ErrNotFound
	}
	e.touched = st.now()
	return *e.state, nil
}

// Update runs fn on the session under the store lock. If fn fails the state is
// left as it was.
func (st *Store) Update(id string, fn func(*State) error) (State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.live(id)
	if !ok {
		return State{}, ErrNotFound
	}
	e.touched = st.now()
	next := *e.state
	if err := fn(&next); err != nil {
		return *e.state, err
	}
	*e.state = next
	return next, nil
}

func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops every expired session and reports how many went.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sweepLocked()
}

func (st *Store) sweepLocked() int {
	if st.TTL <= 0 {
		return 0
	}
	now := st.now()
	n := 0
	for id, e := range st.sessions {
		if now.Sub(e.touched) > st.TTL {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// live returns the entry for id unless it has expired, in which case the entry
// is removed.
func (st *Store) live(id string) (*entry, bool) {
	e, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	if st.TTL > 0 && st.now().Sub(e.touched) > st.TTL {
		delete(st.sessions, id)
		return nil, false
	}
	return e, true
}

func newID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
