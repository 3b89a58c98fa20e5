// Package apsp answers all-pairs shortest-path queries over a set of named
// nodes.
//
// A Graph is built once from an edge list: node names receive dense indices in
// first-encounter order, then a distance matrix and a next-hop table are
// filled by matrix.FloydWarshall. Queries are O(1) for distances and
// O(path length) for paths. There is no incremental update; whenever the edge
// list changes the caller builds a new Graph (O(n³)).
//
// Queries:
//
//   - ShortestDistance(a, b): +Inf when b is unreachable from a.
//   - ShortestPath(a, b): node sequence a..b; empty when unreachable or when
//     either endpoint is unknown.
//   - ShortestVisitingPath(waypoints): exact best visiting order by brute force
//     over every permutation. The cost is factorial in len(waypoints), so the
//     call refuses more than MaxWaypoints (DefaultMaxWaypoints unless
//     configured with WithMaxWaypoints).
//
// Errors (sentinel):
//
//	– ErrUnknownNode       a queried name is not part of the node set.
//	– ErrTooManyWaypoints  the permutation search would exceed the bound.
//	– ErrBadEdge           an edge has an empty endpoint or an invalid weight.
package apsp
