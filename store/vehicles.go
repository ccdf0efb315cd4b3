package store

import (
	"sync"
	"time"
)

// Vehicle is the last-known state of one transport unit.
type Vehicle struct {
	// board number, usually numeric-looking ("3913") but not guaranteed
	// numeric
	Board string
	// identifier of the physical telemetry unit
	RTUID string
	// current route assignment; overwritten on every sighting because
	// vehicles switch routes intra-day
	Route     string
	Latitude  float64
	Longitude float64
	Speed     float64
	// heading in degrees, 0=N, 90=E, 180=S, 270=W
	Direction float64
	// order index of the last station visited; nil until the feed
	// supplies it
	LastStationOrder *int
	// time of the last sighting, used by SweepOlderThan
	SeenAt time.Time
}

// Telemetry is one position report for a vehicle. LastStation is nil
// when the backend does not have that field yet; the previously stored
// value is then left untouched.
type Telemetry struct {
	RTUID       string
	Board       string
	Route       string
	Lat         float64
	Lon         float64
	Speed       float64
	Dir         float64
	LastStation *int
}

// VehicleTracker keeps the last-known telemetry per board number.
type VehicleTracker struct {
	mu       sync.RWMutex
	vehicles map[string]*Vehicle // board number -> state

	now func() time.Time // overridable in tests
}

// NewVehicleTracker creates an empty tracker.
func NewVehicleTracker() *VehicleTracker {
	return &VehicleTracker{
		vehicles: map[string]*Vehicle{},
		now:      time.Now,
	}
}

// Update folds one telemetry report into the tracker, creating the
// vehicle record on first sighting. Every field present in the report
// overwrites the stored one; an absent LastStation keeps the previous
// value.
func (t *VehicleTracker) Update(tel Telemetry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.vehicles[tel.Board]
	if !ok {
		v = &Vehicle{
			Board: tel.Board,
			RTUID: tel.RTUID,
		}
		t.vehicles[tel.Board] = v
	}
	v.Latitude = tel.Lat
	v.Longitude = tel.Lon
	v.Speed = tel.Speed
	v.Direction = tel.Dir
	v.Route = tel.Route
	if tel.LastStation != nil {
		v.LastStationOrder = tel.LastStation
	}
	v.SeenAt = t.now()
}

// Get returns a copy of the vehicle record for the given board.
func (t *VehicleTracker) Get(board string) (Vehicle, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.vehicles[board]
	if !ok {
		return Vehicle{}, false
	}
	return *v, true
}

// Len returns the number of tracked vehicles.
func (t *VehicleTracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.vehicles)
}

// SweepOlderThan removes vehicles not sighted within d and returns how
// many were removed. The tracker never sweeps on its own; an external
// scheduler decides when, and whether, to call this.
func (t *VehicleTracker) SweepOlderThan(d time.Duration) int {
	cutoff := t.now().Add(-d)
	t.mu.Lock()
	defer t.mu.Unlock()
	removed := 0
	for board, v := range t.vehicles {
		if v.SeenAt.Before(cutoff) {
			delete(t.vehicles, board)
			removed++
		}
	}
	return removed
}
