// Package matrix provides the dense numeric kernel behind the all-pairs
// shortest-path engine.
//
// The package offers:
//
//   - Dense: a row-major n×m float64 matrix with bounds-checked At/Set.
//   - NextHop: a row-major n×n table of successor indices (-1 = none).
//   - FloydWarshall: in-place all-pairs closure that also maintains NextHop,
//     so callers can reconstruct a shortest path in O(path length).
//
// Distances use +Inf for "no path"; zero is a legal edge weight (free
// segments), so unlike adjacency encodings the kernel never treats 0 as a
// missing edge. Loop order is fixed (k → i → j) and relaxation is strict,
// which makes ties resolve toward the first path discovered.
//
// Complexity: O(n³) time, O(n²) memory. There is no incremental update;
// callers rebuild from scratch whenever the edge list changes.
package matrix
