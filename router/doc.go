// Package router answers routing queries over a railmap.Map under a set of
// per-network constraints.
//
// Layered weights
//
// The catalog is never mutated. A Router holds two key sets, blocked
// (segments the network cannot pass) and free (segments it has already
// built), and derives an override per segment:
//
//	blocked → +Inf   (unreachable)
//	free    → 0      (sunk cost, traversal is free)
//	other   → trains − pointImportance·points
//
// Any change to the sets or to pointImportance rebuilds the edge list and the
// whole apsp.Graph; there is no incremental update. Queries between changes
// are matrix lookups.
//
// Queries
//
//   - ShortestPath / ShortestRoute / Distance / Reachable for a city pair.
//   - VisitingRoute: exact best order through a few waypoints.
//   - MinSpanningTreeOfShortestRoutes: Kruskal over the complete graph of
//     shortest-route distances between target cities, expanded back into real
//     segments. Empty when any pair is unreachable.
//   - OptimalCitySetExpansion: greedy augmentation of the target set with
//     frontier cities while the required train count drops (or ties with more
//     points). Deterministic, not globally optimal.
//
// A Router is not safe for concurrent mutation; network.Game serializes access.
package router
