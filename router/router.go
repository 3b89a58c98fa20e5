package router

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/ttrplan/apsp"
	"github.com/katalvlaran/ttrplan/metrics"
	"github.com/katalvlaran/ttrplan/railmap"
)

// Router composes the immutable catalog, a constraint overlay and the
// derived all-pairs index.
type Router struct {
	m       *railmap.Map
	opts    Options
	blocked railmap.Set
	free    railmap.Set
	graph   *apsp.Graph
}

// New builds a Router with no constraints and an initial index.
func New(m *railmap.Map, opts ...Option) (*Router, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validPointImportance(o.PointImportance); err != nil {
		return nil, err
	}

	r := &Router{m: m, opts: o, blocked: railmap.NewSet(), free: railmap.NewSet()}
	if err := r.rebuild(); err != nil {
		return nil, err
	}

	return r, nil
}

// Map returns the underlying catalog.
func (r *Router) Map() *railmap.Map { return r.m }

// PointImportance returns the current weighting parameter.
func (r *Router) PointImportance() float64 { return r.opts.PointImportance }

// SetPointImportance changes the weighting and rebuilds the index.
func (r *Router) SetPointImportance(pi float64) error {
	if err := validPointImportance(pi); err != nil {
		return err
	}
	prev := r.opts.PointImportance
	r.opts.PointImportance = pi
	if err := r.rebuild(); err != nil {
		r.opts.PointImportance = prev
		return err
	}

	return nil
}

// SetConstraints replaces the overlay and rebuilds the index. The sets are
// copied. A key present in both sets is treated as blocked; callers that own
// the sets (network.State) reject that state before getting here.
func (r *Router) SetConstraints(blocked, free railmap.Set) error {
	prevBlocked, prevFree := r.blocked, r.free
	r.blocked, r.free = blocked.Clone(), free.Clone()
	if err := r.rebuild(); err != nil {
		r.blocked, r.free = prevBlocked, prevFree
		return err
	}

	return nil
}

// Override reports how segment k is treated.
func (r *Router) Override(k railmap.Key) Override {
	switch {
	case r.blocked.Has(k):
		return Blocked
	case r.free.Has(k):
		return Free
	default:
		return Normal
	}
}

// Weight returns the effective routing weight of c under the overlay.
func (r *Router) Weight(c railmap.Connection) float64 {
	switch r.Override(c.Key()) {
	case Blocked:
		return math.Inf(1)
	case Free:
		return 0
	default:
		return c.Weight(r.opts.PointImportance)
	}
}

// rebuild recomputes the layered edge list and the full distance matrix.
func (r *Router) rebuild() error {
	start := time.Now()

	conns := r.m.Connections()
	edges := make([]apsp.Edge, len(conns))
	for i, c := range conns {
		edges[i] = apsp.Edge{From: c.From, To: c.To, Weight: r.Weight(c)}
	}
	g, err := apsp.New(edges, apsp.WithMaxWaypoints(r.opts.MaxWaypoints))
	if err != nil {
		return fmt.Errorf("router: rebuild: %w", err)
	}
	r.graph = g

	metrics.MatrixRebuilds.Inc()
	metrics.MatrixRebuildDuration.Observe(float64(time.Since(start).Microseconds()) / 1000)

	return nil
}

func (r *Router) checkCities(cities ...string) error {
	for _, c := range cities {
		if !r.graph.Has(c) {
			return fmt.Errorf("%w: %q", ErrUnknownCity, c)
		}
	}

	return nil
}

// Distance returns the weighted shortest-route length, +Inf if unreachable.
func (r *Router) Distance(a, b string) (float64, error) {
	if err := r.checkCities(a, b); err != nil {
		return math.Inf(1), err
	}

	return r.graph.ShortestDistance(a, b)
}

// Reachable reports whether any finite route joins a and b.
func (r *Router) Reachable(a, b string) (bool, error) {
	d, err := r.Distance(a, b)
	if err != nil {
		return false, err
	}

	return !math.IsInf(d, 1), nil
}

// ShortestPath returns the city sequence of the shortest a→b route; empty
// when b is unreachable.
func (r *Router) ShortestPath(a, b string) ([]string, error) {
	if err := r.checkCities(a, b); err != nil {
		return nil, err
	}
	metrics.Queries.WithLabelValues(metrics.KindRoute).Inc()

	return r.graph.ShortestPath(a, b), nil
}

// ShortestRoute is ShortestPath expressed as segments.
func (r *Router) ShortestRoute(a, b string) (railmap.Route, error) {
	path, err := r.ShortestPath(a, b)
	if err != nil {
		return railmap.Route{}, err
	}

	return railmap.RouteFromPath(r.m, path)
}

// VisitingRoute returns the best visiting order through waypoints as a city
// walk and as segments. Unreachable combinations yield an empty walk.
func (r *Router) VisitingRoute(waypoints []string) ([]string, railmap.Route, error) {
	if err := r.checkCities(waypoints...); err != nil {
		return nil, railmap.Route{}, err
	}
	metrics.Queries.WithLabelValues(metrics.KindVisit).Inc()

	path, _, err := r.graph.ShortestVisitingPath(waypoints)
	if err != nil {
		return nil, railmap.Route{}, err
	}
	route, err := railmap.RouteFromPath(r.m, path)
	if err != nil {
		return nil, railmap.Route{}, err
	}

	return path, route, nil
}

// RequiredTrains sums the lengths of bundle segments not already built.
func (r *Router) RequiredTrains(bundle []railmap.Connection) int {
	var n int
	for _, c := range bundle {
		if !r.free.Has(c.Key()) {
			n += c.Trains
		}
	}

	return n
}

// GainPoints sums the scores of bundle segments not already built.
func (r *Router) GainPoints(bundle []railmap.Connection) int {
	var n int
	for _, c := range bundle {
		if !r.free.Has(c.Key()) {
			n += c.Points()
		}
	}

	return n
}

// RouteWeight sums the effective weights of route under the current overlay.
func (r *Router) RouteWeight(route railmap.Route) float64 {
	var w float64
	for _, c := range route.Connections() {
		w += r.Weight(c)
	}

	return w
}
