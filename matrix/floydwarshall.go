// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order and a
//     successor table for path reconstruction.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.
//   - NextHop must be seeded with j at (i,j) for every finite direct edge and
//     with i at (i,i).

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// SeedEdge records a direct edge i→j of weight w in both tables, keeping the
// lighter one when parallel edges exist. For undirected graphs callers seed
// both directions. +Inf weights are ignored: an impassable edge is the same as
// no edge at all.
func SeedEdge(dist *Dense, next *NextHop, i, j int, w float64) error {
	if dist == nil || next == nil {
		return fmt.Errorf("SeedEdge: %w", ErrNilMatrix)
	}
	if math.IsNaN(w) || w < 0 {
		return fmt.Errorf("SeedEdge(%d,%d,%g): %w", i, j, w, ErrNegativeWeight)
	}
	if math.IsInf(w, 1) {
		return nil
	}
	cur, err := dist.At(i, j)
	if err != nil {
		return err
	}
	// Strict: the first seeded of two equal parallel edges wins.
	if w < cur {
		if err = dist.Set(i, j, w); err != nil {
			return err
		}

		return next.Set(i, j, j)
	}

	return nil
}

// FloydWarshall computes all-pairs shortest paths in-place on dist and keeps
// next consistent with it.
//
// Determinism:
//   - Loop order is fixed (k → i → j) and only strict improvements relax,
//     so among equal-cost paths the one found first is retained.
//
// Complexity: Time O(n³), Extra space O(1).
func FloydWarshall(dist *Dense, next *NextHop) error {
	if dist == nil || next == nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, ErrNilMatrix)
	}
	if dist.r != dist.c {
		return fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, dist.r, dist.c, ErrNonSquare)
	}
	if next.n != dist.r {
		return fmt.Errorf("%s: next-hop order %d, matrix order %d: %w",
			opFloydWarshall, next.n, dist.r, ErrDimensionMismatch)
	}

	n := dist.r
	data := dist.data
	hops := next.data

	// A vertex always reaches itself through itself.
	for i := 0; i < n; i++ {
		hops[i*n+i] = i
	}

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					hops[baseI+j] = hops[baseI+k]
				}
			}
		}
	}

	return nil
}
