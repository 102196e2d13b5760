package state

import (
	"sort"
	"sync"
)

// Store holds the current snapshot and applies actions to it. The zero value
// is ready to use with a default Reducer.
type Store struct {
	mu          sync.RWMutex
	reducer     Reducer
	snapshot    Snapshot
	initialized bool

	subMu       sync.Mutex
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// NewStore returns a store that reduces actions with r.
func NewStore(r Reducer) *Store {
	return &Store{reducer: r, snapshot: InitialSnapshot(), initialized: true}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return InitialSnapshot()
	}
	return s.snapshot.Clone()
}

// Dispatch reduces a against the current snapshot, stores the result and
// notifies subscribers. Subscribers run on the caller's goroutine after the
// lock is released, each with its own copy.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	if !s.initialized {
		s.snapshot = InitialSnapshot()
		s.initialized = true
	}
	s.snapshot = s.reducer.Reduce(s.snapshot, a)
	next := s.snapshot
	s.mu.Unlock()

	for _, fn := range s.listeners() {
		fn(next.Clone())
	}
}

// Subscribe registers fn to be called after every dispatch. The returned
// function removes the registration and is safe to call more than once.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	if s.subscribers == nil {
		s.subscribers = make(map[int]func(Snapshot))
	}
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

// listeners returns subscribers in registration order.
func (s *Store) listeners() []func(Snapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Snapshot), len(ids))
	for i, id := range ids {
		fns[i] = s.subscribers[id]
	}
	return fns
}
