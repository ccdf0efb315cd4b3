package store

import (
	"sort"
	"sync"
)

// Prediction is one reported arrival estimate: minutes until a given
// board reaches the station.
type Prediction struct {
	ETA   int
	Board string
}

// PredictionStore keeps the current ETA lists keyed by route and
// station. Entries are replaced wholesale on every update and never
// deleted; a key that stops receiving updates keeps its last value.
type PredictionStore struct {
	mu   sync.RWMutex
	etas map[string]map[int][]int // route name -> station id -> ascending distinct ETAs
}

// NewPredictionStore creates an empty prediction store.
func NewPredictionStore() *PredictionStore {
	return &PredictionStore{
		etas: map[string]map[int][]int{},
	}
}

// Update replaces the stored ETA list for (route, stationID) with the
// distinct ETA values from raw, sorted ascending. Board numbers are
// discarded here; the tracker is the home for per-vehicle state. An
// unseen route is created implicitly.
func (s *PredictionStore) Update(route string, stationID int, raw []Prediction) {
	set := map[int]struct{}{}
	for _, p := range raw {
		set[p.ETA] = struct{}{}
	}
	etas := make([]int, 0, len(set))
	for eta := range set {
		etas = append(etas, eta)
	}
	sort.Ints(etas)

	s.mu.Lock()
	defer s.mu.Unlock()
	byStation, ok := s.etas[route]
	if !ok {
		byStation = map[int][]int{}
		s.etas[route] = byStation
	}
	byStation[stationID] = etas
}

// Get returns the current ETA list for (route, stationID), or nil when
// nothing has ever been ingested for that key. The returned slice is
// never mutated by the store - updates install a fresh slice - so
// callers may read it without holding any lock, but must not modify it.
func (s *PredictionStore) Get(route string, stationID int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.etas[route][stationID]
}

// EntryCount returns the number of (route, station) keys that have
// received at least one update.
func (s *PredictionStore) EntryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, byStation := range s.etas {
		n += len(byStation)
	}
	return n
}
