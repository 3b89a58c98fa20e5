package mst

import (
	"math"
	"sort"

	"github.com/katalvlaran/ttrplan/dsu"
)

// Edge is an undirected candidate edge between integer nodes U and V.
type Edge struct {
	U, V   int
	Weight float64
}

// Kruskal returns the minimum spanning forest of edges.
//
// Steps:
//  1. Copy and stable-sort edges by ascending Weight (input order breaks ties).
//  2. For each edge (u,v): skip self-loops and +Inf; accept when
//     Find(u) != Find(v), then Union(u,v).
//  3. Stop early once |nodes|−1 edges are accepted.
//
// The input slice is not modified.
func Kruskal(edges []Edge) []Edge {
	if len(edges) == 0 {
		return []Edge{}
	}

	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	forest := dsu.New()
	for _, e := range sorted {
		forest.Find(e.U)
		forest.Find(e.V)
	}
	need := forest.Len() - 1

	tree := make([]Edge, 0, need)
	for _, e := range sorted {
		if e.U == e.V || math.IsInf(e.Weight, 1) {
			continue
		}
		if forest.Union(e.U, e.V) {
			tree = append(tree, e)
			if len(tree) == need {
				break
			}
		}
	}

	return tree
}

// Total sums the weights of edges.
func Total(edges []Edge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}
