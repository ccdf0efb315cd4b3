package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load builds a catalog from a directory of per-route CSV files.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	c := &Catalog{
		routes:   map[string]*Route{},
		stations: map[int]string{},
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		route, err := c.loadRoute(filepath.Join(dir, entry.Name()), name)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", name, err)
		}
		c.routes[name] = route
	}
	return c, nil
}

// loadRoute consumes one route CSV in file order. Every row appends its
// station id to the sequence and writes the id -> name mapping into the
// global station table.
func (c *Catalog) loadRoute(path, routeName string) (*Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may carry extra columns
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	var segments []string
	lastSegment := ""
	cutoffStationID := 0
	var stationSequence []int

	for i, row := range rows[1:] { // skip header
		if len(row) < 4 {
			return nil, fmt.Errorf("%s: row %d has %d columns, want at least 4", path, i+2, len(row))
		}
		stationID, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: bad station_id: %w", path, i+2, err)
		}
		if _, err := strconv.Atoi(strings.TrimSpace(row[1])); err != nil {
			return nil, fmt.Errorf("%s: row %d: bad station_order: %w", path, i+2, err)
		}
		stationName := row[2]
		segment := row[3]

		// A label change marks the start of the second segment. Only
		// labels seen before the first change grow the segment list, so
		// further changes move the cutoff id without adding segments.
		if lastSegment != "" && lastSegment != segment {
			cutoffStationID = stationID
		} else if !containsString(segments, segment) {
			segments = append(segments, segment)
		}
		lastSegment = segment

		stationSequence = append(stationSequence, stationID)
		c.stations[stationID] = stationName
	}

	if len(stationSequence) == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	return &Route{
		Name:            routeName,
		Segments:        segments,
		CutoffStationID: cutoffStationID,
		StationSequence: stationSequence,
	}, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
