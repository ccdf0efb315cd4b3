package catalog

import "sort"

// Route describes one transit line.
type Route struct {
	// human-readable name, usually numeric-looking ("30") but not
	// guaranteed numeric ("30A")
	Name string

	// display headers for the two directions of the route, e.g.
	// "Airport - Center" and "Center - Airport"; single-segment routes
	// carry one entry
	Segments []string

	// id of the station that starts the second segment; 0 when the
	// route has a single segment
	CutoffStationID int

	// station ids in traversal order; both segments back-to-back
	StationSequence []int
}

// Catalog stores route reference data in memory for fast lookups.
type Catalog struct {
	routes   map[string]*Route // route name -> route
	stations map[int]string    // station id -> display name, global across routes
}

// Lookup returns the route with the given name.
func (c *Catalog) Lookup(name string) (*Route, bool) {
	r, ok := c.routes[name]
	return r, ok
}

// RouteNames returns all loaded route names, sorted.
func (c *Catalog) RouteNames() []string {
	names := make([]string, 0, len(c.routes))
	for name := range c.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StationName returns the display name for a station id. Stations are
// shared across routes, so the namespace is global.
func (c *Catalog) StationName(id int) string {
	return c.stations[id]
}

// RouteCount returns the number of loaded routes.
func (c *Catalog) RouteCount() int {
	return len(c.routes)
}
