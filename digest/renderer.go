package digest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/eta-digest/catalog"
	"github.com/theoremus-urban-solutions/eta-digest/store"
)

const (
	iconBus    = "🚌"
	iconNoData = "🚫"
)

// ErrRouteNotFound is returned when the requested route is not in the
// catalog. The caller owns the user-facing messaging.
var ErrRouteNotFound = errors.New("route not found")

// Renderer produces digests from the catalog and the live prediction
// store. It holds no state of its own and is safe for concurrent use.
type Renderer struct {
	catalog     *catalog.Catalog
	predictions *store.PredictionStore
}

// NewRenderer creates a renderer over the given catalog and store.
func NewRenderer(c *catalog.Catalog, p *store.PredictionStore) *Renderer {
	return &Renderer{
		catalog:     c,
		predictions: p,
	}
}

// Render builds the full digest for a route: the first segment header,
// one line per station in traversal order, the second segment header
// at the cutoff station, and the inferred bus-position markers.
func (r *Renderer) Render(routeName string) (string, error) {
	route, ok := r.catalog.Lookup(routeName)
	if !ok {
		return "", ErrRouteNotFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", route.Segments[0])

	// previous non-skipped smallest ETA; stations without data leave it
	// untouched
	lastPrognosis := 0
	hasLast := false

	for _, stationID := range route.StationSequence {
		if route.CutoffStationID != 0 && stationID == route.CutoffStationID && len(route.Segments) > 1 {
			// header for the return part of the route
			fmt.Fprintf(&b, "\n*%s*\n", route.Segments[1])
		}

		stationName := r.catalog.StationName(stationID)
		etas := r.predictions.Get(routeName, stationID)
		if len(etas) == 0 {
			fmt.Fprintf(&b, "%s: %s\n", stationName, iconNoData)
			continue
		}

		stringETAs := joinETAs(etas)
		current := etas[0] // lists are stored ascending
		if current == 0 && (!hasLast || lastPrognosis != 0) {
			// the vehicle is at this station right now
			fmt.Fprintf(&b, "%s %s: %s\n", iconBus, stationName, stringETAs)
		} else {
			if hasLast && lastPrognosis != 0 && current < lastPrognosis {
				// ETA dropped between two data-bearing stations without
				// reaching zero: the vehicle is between them
				b.WriteString(iconBus + " \n")
			}
			fmt.Fprintf(&b, "%s: %s\n", stationName, stringETAs)
		}
		lastPrognosis = current
		hasLast = true
	}

	return b.String(), nil
}

// RenderStation renders the raw ETA list for a single station of a
// route, or the no-data marker when nothing is stored for it.
func (r *Renderer) RenderStation(routeName string, stationID int) (string, error) {
	if _, ok := r.catalog.Lookup(routeName); !ok {
		return "", ErrRouteNotFound
	}
	etas := r.predictions.Get(routeName, stationID)
	if len(etas) == 0 {
		return iconNoData, nil
	}
	return joinETAs(etas), nil
}

func joinETAs(etas []int) string {
	parts := make([]string, len(etas))
	for i, eta := range etas {
		parts[i] = strconv.Itoa(eta)
	}
	return strings.Join(parts, ", ")
}
