package apsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ttrplan/matrix"
)

// Graph is an immutable all-pairs shortest-path index over named nodes.
// It is safe for concurrent reads.
type Graph struct {
	opts  Options
	names []string       // index → name, first-encounter order
	index map[string]int // name → index
	dist  *matrix.Dense  // nil when the graph has no nodes
	next  *matrix.NextHop
}

// New builds the distance and next-hop matrices for edges.
//
// Stage 1 (Validate): reject empty endpoints and NaN/negative weights.
// Stage 2 (Index): assign dense indices in first-encounter order (From before To).
// Stage 3 (Seed): write direct edges, keeping the lighter of parallel edges.
// Stage 4 (Close): run Floyd–Warshall.
//
// Complexity: O(E + n³).
func New(edges []Edge, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxWaypoints < 1 {
		o.MaxWaypoints = DefaultMaxWaypoints
	}

	g := &Graph{opts: o, index: make(map[string]int)}
	for _, e := range edges {
		if e.From == "" || e.To == "" || math.IsNaN(e.Weight) || e.Weight < 0 {
			return nil, fmt.Errorf("%w: %q-%q weight %g", ErrBadEdge, e.From, e.To, e.Weight)
		}
		g.register(e.From)
		g.register(e.To)
	}

	n := len(g.names)
	if n == 0 {
		return g, nil
	}

	var err error
	if g.dist, err = matrix.NewDistance(n); err != nil {
		return nil, err
	}
	if g.next, err = matrix.NewNextHop(n); err != nil {
		return nil, err
	}

	for _, e := range edges {
		u, v := g.index[e.From], g.index[e.To]
		if err = matrix.SeedEdge(g.dist, g.next, u, v, e.Weight); err != nil {
			return nil, fmt.Errorf("apsp: seed %q-%q: %w", e.From, e.To, err)
		}
		if !o.Directed {
			if err = matrix.SeedEdge(g.dist, g.next, v, u, e.Weight); err != nil {
				return nil, fmt.Errorf("apsp: seed %q-%q: %w", e.To, e.From, err)
			}
		}
	}

	if err = matrix.FloydWarshall(g.dist, g.next); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Graph) register(name string) {
	if _, ok := g.index[name]; ok {
		return
	}
	g.index[name] = len(g.names)
	g.names = append(g.names, name)
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.names) }

// Has reports whether name is a known node.
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Nodes returns node names in index order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Index returns the dense index of name.
func (g *Graph) Index(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return i, nil
}

// ShortestDistance returns the length of the shortest a→b path, +Inf when b
// is unreachable. Unknown names yield ErrUnknownNode.
func (g *Graph) ShortestDistance(a, b string) (float64, error) {
	i, err := g.Index(a)
	if err != nil {
		return math.Inf(1), err
	}
	j, err := g.Index(b)
	if err != nil {
		return math.Inf(1), err
	}

	return g.distance(i, j), nil
}

func (g *Graph) distance(i, j int) float64 {
	d, _ := g.dist.At(i, j) // indices come from g.index
	return d
}

// ShortestPath reconstructs the node sequence of a shortest a→b path by
// following next hops. It returns an empty slice if b is unreachable or if
// either endpoint is unknown; ShortestPath(a, a) is [a].
func (g *Graph) ShortestPath(a, b string) []string {
	i, ok := g.index[a]
	if !ok {
		return []string{}
	}
	j, ok := g.index[b]
	if !ok {
		return []string{}
	}

	idx := g.next.Path(i, j)
	out := make([]string, len(idx))
	for k, v := range idx {
		out[k] = g.names[v]
	}

	return out
}
