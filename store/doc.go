// Package store holds the mutable shared state of the service: the
// live ETA lists per (route, station) and the last-known telemetry per
// vehicle.
//
// Both stores own their synchronization. Writes are brief per-key
// critical sections; no lock is held across a full-route read, so a
// render never blocks the feed writer for its whole duration. Readers
// may observe a just-superseded value - updates are last-write-wins
// per key, with no cross-key ordering.
package store
