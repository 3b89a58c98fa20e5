package router

import (
	"math"
	"sort"

	"github.com/katalvlaran/ttrplan/metrics"
	"github.com/katalvlaran/ttrplan/mst"
	"github.com/katalvlaran/ttrplan/railmap"
)

// MinSpanningTreeOfShortestRoutes returns the segments of a cheap bundle
// connecting cities.
//
// Steps:
//  1. Deduplicate cities, keeping first occurrences.
//  2. Build the complete graph over them weighted by shortest-route distance;
//     any +Inf pair makes the result empty.
//  3. Run Kruskal.
//  4. Expand every accepted pair into its shortest path and collect the
//     segments, each key once, in acceptance then path order.
func (r *Router) MinSpanningTreeOfShortestRoutes(cities []string) ([]railmap.Connection, error) {
	if err := r.checkCities(cities...); err != nil {
		return nil, err
	}
	metrics.Queries.WithLabelValues(metrics.KindBundle).Inc()

	return r.bundle(dedupe(cities)), nil
}

// bundle assumes validated, deduplicated cities.
func (r *Router) bundle(cities []string) []railmap.Connection {
	if len(cities) < 2 {
		return []railmap.Connection{}
	}

	candidates := make([]mst.Edge, 0, len(cities)*(len(cities)-1)/2)
	for i := 0; i < len(cities); i++ {
		for j := i + 1; j < len(cities); j++ {
			d, _ := r.graph.ShortestDistance(cities[i], cities[j])
			if math.IsInf(d, 1) {
				return []railmap.Connection{}
			}
			candidates = append(candidates, mst.Edge{U: i, V: j, Weight: d})
		}
	}

	seen := railmap.NewSet()
	out := make([]railmap.Connection, 0)
	for _, e := range mst.Kruskal(candidates) {
		path := r.graph.ShortestPath(cities[e.U], cities[e.V])
		for k := 1; k < len(path); k++ {
			c, err := r.m.Connection(path[k-1], path[k])
			if err != nil {
				// The index is built from the catalog, so every hop is a segment.
				continue
			}
			if seen.Add(c.Key()) {
				out = append(out, c)
			}
		}
	}

	return out
}

// OptimalCitySetExpansion greedily adds frontier cities to improve the
// bundle for cities.
//
// The frontier is every city touched by the current bundle plus the targets
// themselves; candidates are their map neighbors not yet targeted, tried in
// name order. A candidate is accepted when its bundle needs strictly fewer
// trains, or as many trains for strictly more points. After an acceptance
// the scan restarts from the new frontier; the loop ends when a full scan
// accepts nothing. Each acceptance adds a city, so the number of passes is
// bounded by the number of map cities.
func (r *Router) OptimalCitySetExpansion(cities []string) (Expansion, error) {
	if err := r.checkCities(cities...); err != nil {
		return Expansion{}, err
	}
	metrics.Queries.WithLabelValues(metrics.KindExpansion).Inc()

	current := dedupe(cities)
	best := r.bundle(current)
	bestTrains, bestGain := r.RequiredTrains(best), r.GainPoints(best)

	for improved := true; improved && len(best) > 0; {
		improved = false
		for _, cand := range r.frontierCandidates(current, best) {
			trial := append(append(make([]string, 0, len(current)+1), current...), cand)
			b := r.bundle(trial)
			if len(b) == 0 {
				continue
			}
			trains, gain := r.RequiredTrains(b), r.GainPoints(b)
			if trains < bestTrains || (trains == bestTrains && gain > bestGain) {
				current, best, bestTrains, bestGain = trial, b, trains, gain
				improved = true
				break
			}
		}
	}

	return Expansion{
		Cities:         current,
		Bundle:         best,
		RequiredTrains: bestTrains,
		GainPoints:     bestGain,
	}, nil
}

// frontierCandidates lists neighbors of the touched cities that are not yet
// targets, sorted by name.
func (r *Router) frontierCandidates(targets []string, bundle []railmap.Connection) []string {
	inTargets := make(map[string]bool, len(targets))
	for _, c := range targets {
		inTargets[c] = true
	}

	touched := make(map[string]bool, len(targets)+2*len(bundle))
	for _, c := range targets {
		touched[c] = true
	}
	for _, c := range bundle {
		touched[c.From] = true
		touched[c.To] = true
	}

	cands := make(map[string]bool)
	for city := range touched {
		for _, n := range r.m.Neighbors(city) {
			if !inTargets[n] {
				cands[n] = true
			}
		}
	}

	out := make([]string, 0, len(cands))
	for c := range cands {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

func dedupe(cities []string) []string {
	seen := make(map[string]bool, len(cities))
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	return out
}
