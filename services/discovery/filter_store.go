// File: services/discovery/filter_store.go
package discovery

import (
	"sync"

	"hobyhub/models"
)

// FilterObserver receives a criteria snapshot each time the store's trigger
// counter advances.
type FilterObserver func(models.FilterSnapshot)

// FilterStore is the single source of truth for search refinement criteria.
// Setters edit a draft; nothing is delivered to observers until
// TriggerUpdate runs. That decoupling is what keeps a keystroke in the
// location box from costing a network round trip.
type FilterStore struct {
	mu        sync.Mutex
	criteria  models.FilterCriteria
	trigger   uint64
	nextSubID int
	observers map[int]FilterObserver
}

// NewFilterStore returns a store holding the default criteria.
func NewFilterStore() *FilterStore {
	return &FilterStore{
		criteria:  models.DefaultFilterCriteria(),
		observers: make(map[int]FilterObserver),
	}
}

// Subscribe registers an observer and returns its unsubscribe function.
func (s *FilterStore) Subscribe(fn FilterObserver) func() {
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

// Criteria returns a copy of the current draft criteria.
func (s *FilterStore) Criteria() models.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// Trigger returns the current trigger counter value.
func (s *FilterStore) Trigger() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trigger
}

// SetPriceRange edits the draft price range. Min > max is not rejected; the
// upstream treats such a range as matching nothing.
func (s *FilterStore) SetPriceRange(min, max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.PriceRange = [2]int{min, max}
}

func (s *FilterStore) SetGender(gender string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Gender = gender
}

func (s *FilterStore) SetAge(age string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Age = age
}

func (s *FilterStore) SetTime(timeOfDay string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Time = timeOfDay
}

func (s *FilterStore) SetLocation(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Location = location
}

func (s *FilterStore) SetCoordinates(lat, lng float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Latitude = lat
	s.criteria.Longitude = lng
}

func (s *FilterStore) SetCategory(categoryID, subCategoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.CategoryID = categoryID
	s.criteria.SubCategoryID = subCategoryID
}

// SetFiltersApplied marks whether the advanced filter selections should be
// honored by the fetch loop.
func (s *FilterStore) SetFiltersApplied(applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.FiltersApplied = applied
}

// TriggerUpdate advances the trigger counter and delivers the criteria as of
// trigger time to every observer, even when no criterion changed since the
// last trigger.
func (s *FilterStore) TriggerUpdate() {
	s.mu.Lock()
	s.trigger++
	snap := models.FilterSnapshot{Criteria: s.criteria, Trigger: s.trigger}
	observers := make([]FilterObserver, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

// Clear resets the refinement fields to their defaults, marks filters as not
// applied, and triggers, so the next fetch goes out with zero/empty values.
func (s *FilterStore) Clear() {
	s.mu.Lock()
	s.criteria.Gender = ""
	s.criteria.Age = ""
	s.criteria.Time = ""
	s.criteria.PriceRange = [2]int{models.DefaultPriceMin, models.DefaultPriceMax}
	s.criteria.FiltersApplied = false
	s.mu.Unlock()

	s.TriggerUpdate()
}
