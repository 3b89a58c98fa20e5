package apsp

import (
	"fmt"
	"math"
)

// ShortestVisitingPath finds the order of waypoints with minimal total
// distance (sum of consecutive-pair shortest distances, open path, no return
// to start) and stitches the legs into one node sequence.
//
// Every permutation is evaluated, in lexicographic order of waypoint
// positions starting with the given order; the first permutation reaching the
// strict minimum wins. The shared endpoint between consecutive legs appears
// once in the result.
//
// Returns:
//   - path, total, nil on success;
//   - empty path, +Inf, nil when no ordering connects all waypoints;
//   - ErrUnknownNode if any waypoint is unknown;
//   - ErrTooManyWaypoints if len(waypoints) exceeds the configured bound.
//
// Complexity: O(k!·k) for k waypoints.
func (g *Graph) ShortestVisitingPath(waypoints []string) ([]string, float64, error) {
	idx := make([]int, len(waypoints))
	for k, w := range waypoints {
		i, err := g.Index(w)
		if err != nil {
			return nil, math.Inf(1), err
		}
		idx[k] = i
	}
	if len(waypoints) > g.opts.MaxWaypoints {
		return nil, math.Inf(1), fmt.Errorf("%w: %d > %d", ErrTooManyWaypoints, len(waypoints), g.opts.MaxWaypoints)
	}
	if len(waypoints) == 0 {
		return []string{}, 0, nil
	}

	order, total := g.bestOrder(idx)
	if order == nil {
		return []string{}, math.Inf(1), nil
	}

	path := []string{g.names[order[0]]}
	for k := 1; k < len(order); k++ {
		leg := g.next.Path(order[k-1], order[k])
		for _, v := range leg[1:] { // leg[0] is the previous leg's last node
			path = append(path, g.names[v])
		}
	}

	return path, total, nil
}

// bestOrder returns the node indices of the cheapest finite ordering, or nil
// when every ordering crosses an unreachable pair.
func (g *Graph) bestOrder(nodes []int) ([]int, float64) {
	k := len(nodes)
	perm := make([]int, k) // positions into nodes
	for i := range perm {
		perm[i] = i
	}

	best := math.Inf(1)
	var bestPerm []int
	for {
		var sum float64
		for i := 1; i < k && sum < best; i++ {
			sum += g.distance(nodes[perm[i-1]], nodes[perm[i]])
		}
		if sum < best {
			best = sum
			bestPerm = append(bestPerm[:0], perm...)
		}
		if !nextPermutation(perm) {
			break
		}
	}
	if bestPerm == nil {
		return nil, best
	}

	out := make([]int, k)
	for i, p := range bestPerm {
		out[i] = nodes[p]
	}

	return out, best
}

// nextPermutation rearranges p into its lexicographic successor and reports
// false once p is the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
