package services

import (
	"sync"

	"airease/backend/internal/models/dtos"
)

// FlightStore holds scored results by flight ID so detail, rescore,
// and enrichment endpoints can work without refetching. Values are
// replaced wholesale under the lock: a reader sees either the old
// result or the new one, never a half-updated mix.
type FlightStore struct {
	mu      sync.RWMutex
	results map[string]dtos.ScoreResult
}

func NewFlightStore() *FlightStore {
	return &FlightStore{
		results: make(map[string]dtos.ScoreResult),
	}
}

// Put stores or replaces one scored result.
func (s *FlightStore) Put(result dtos.ScoreResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.Flight.ID] = result
}

// PutAll stores a batch under one lock acquisition.
func (s *FlightStore) PutAll(results []dtos.ScoreResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range results {
		s.results[r.Flight.ID] = r
	}
}

// Get returns the scored result for a flight ID.
func (s *FlightStore) Get(flightID string) (dtos.ScoreResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[flightID]
	return r, ok
}

// Replace atomically swaps the stored result for a flight through the
// update function. The update runs under the write lock, so dimension
// values and the overall score change together or not at all.
func (s *FlightStore) Replace(flightID string, update func(dtos.ScoreResult) dtos.ScoreResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.results[flightID]
	if !ok {
		return false
	}
	s.results[flightID] = update(current)
	return true
}

// Len returns the number of stored results.
func (s *FlightStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
