// Package dsu implements a disjoint-set (union–find) forest over integer ids.
//
// Elements are created lazily: the first Find or Union that mentions an id
// makes it a singleton set. Find compresses paths; Union is deliberately
// asymmetric and NOT balanced by rank: the root of x always becomes the parent
// of the root of y. Callers that depend on which representative survives a
// merge (for example to keep a stable component label) can rely on that.
//
// The structure is not safe for concurrent use.
package dsu

// DisjointSet is a union–find forest keyed by int.
// The zero value is not usable; call New.
type DisjointSet struct {
	parent map[int]int
}

// New returns an empty DisjointSet. The optional ids are registered as
// singletons up front; unknown ids are still accepted later.
func New(ids ...int) *DisjointSet {
	d := &DisjointSet{parent: make(map[int]int, len(ids))}
	for _, id := range ids {
		d.parent[id] = id
	}

	return d
}

// Len reports how many ids the forest has seen.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Find returns the representative of x's set, compressing the path walked.
// Complexity: amortized O(log n) without union by rank.
func (d *DisjointSet) Find(x int) int {
	p, ok := d.parent[x]
	if !ok {
		d.parent[x] = x
		return x
	}
	if p == x {
		return x
	}

	// First pass: locate the root.
	root := p
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: point every node on the path straight at the root.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y. The root of x becomes the parent of the
// root of y. It reports whether two distinct sets were merged; uniting
// elements that already share a root is a no-op.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	d.parent[ry] = rx

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
