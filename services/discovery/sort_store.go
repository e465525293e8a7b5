// File: services/discovery/sort_store.go
package discovery

import (
	"sync"

	"hobyhub/models"
)

// SortObserver receives the full sort criteria after each edit.
type SortObserver func(models.SortCriteria)

// SortStore holds the sort order, distance radius and online/offline mode.
// Unlike the filter store it notifies on every change: the top bar commits
// immediately, there is no apply step.
type SortStore struct {
	mu        sync.Mutex
	criteria  models.SortCriteria
	nextSubID int
	observers map[int]SortObserver
}

// NewSortStore returns a store with the given initial criteria.
func NewSortStore(initial models.SortCriteria) *SortStore {
	return &SortStore{
		criteria:  initial,
		observers: make(map[int]SortObserver),
	}
}

// Subscribe registers an observer and returns its unsubscribe function.
func (s *SortStore) Subscribe(fn SortObserver) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Criteria returns a copy of the current sort criteria.
func (s *SortStore) Criteria() models.SortCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// SetKey changes the sort order and notifies observers.
func (s *SortStore) SetKey(key models.SortKey) {
	s.mu.Lock()
	s.criteria.Key = key
	s.mu.Unlock()
	s.notify()
}

// SetDistance changes the search radius and notifies observers.
func (s *SortStore) SetDistance(km int) {
	s.mu.Lock()
	s.criteria.DistanceKm = km
	s.mu.Unlock()
	s.notify()
}

// SetMode toggles between online and offline listings and notifies observers.
func (s *SortStore) SetMode(mode models.ActivityType) {
	s.mu.Lock()
	s.criteria.Mode = mode
	s.mu.Unlock()
	s.notify()
}

func (s *SortStore) notify() {
	s.mu.Lock()
	snap := s.criteria
	observers := make([]SortObserver, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}
