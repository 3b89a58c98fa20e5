// Package mst computes minimum spanning forests with Kruskal's algorithm over
// a plain candidate edge list on integer nodes.
//
// What & Why
//
//   - The planner builds a complete graph over target cities whose weights are
//     shortest-route distances, and needs the cheapest acyclic subset that
//     connects them. Kruskal fits: the candidate list is small and sorting it
//     once is cheaper than maintaining a heap.
//
// Behavior
//
//   - Edges are sorted ascending by weight with a stable sort, so equal
//     weights keep their input order.
//   - An edge is accepted iff its endpoints lie in different components of a
//     dsu.DisjointSet, after which the components are united.
//   - Self-loops and +Inf edges never connect anything and are skipped.
//   - On a connected candidate graph with n nodes the result has exactly n−1
//     edges; on a disconnected one it has fewer and no attempt is made to
//     complete a tree across components.
//
// Complexity: O(E log E + E·α) time, O(V + E) memory.
package mst
