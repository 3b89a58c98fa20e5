package matrix

// NoHop marks an absent successor in a NextHop table.
const NoHop = -1

// NextHop is a square row-major table where At(i, j) is the vertex that
// follows i on a shortest i→j path, or NoHop when j is unreachable from i.
type NextHop struct {
	n    int
	data []int
}

// NewNextHop allocates an n×n table filled with NoHop.
func NewNextHop(n int) (*NextHop, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]int, n*n)
	for i := range data {
		data[i] = NoHop
	}

	return &NextHop{n: n, data: data}, nil
}

// Order returns n for an n×n table.
func (h *NextHop) Order() int { return h.n }

// At returns the successor of i on the way to j.
// Out-of-range indices report NoHop.
func (h *NextHop) At(i, j int) int {
	if i < 0 || j < 0 || i >= h.n || j >= h.n {
		return NoHop
	}

	return h.data[i*h.n+j]
}

// Set records that the path i→j continues through hop.
func (h *NextHop) Set(i, j, hop int) error {
	if i < 0 || j < 0 || i >= h.n || j >= h.n {
		return denseErrorf("NextHop.Set", i, j, ErrOutOfRange)
	}
	h.data[i*h.n+j] = hop

	return nil
}

// Path expands the stored successors into the full index sequence i..j.
// It returns nil when j is unreachable from i. For i == j the result is [i].
func (h *NextHop) Path(i, j int) []int {
	if i < 0 || j < 0 || i >= h.n || j >= h.n {
		return nil
	}
	if i == j {
		return []int{i}
	}
	if h.data[i*h.n+j] == NoHop {
		return nil
	}

	path := []int{i}
	// At most n-1 hops on a simple path; the bound guards a corrupted table.
	for steps := 0; i != j && steps < h.n; steps++ {
		i = h.data[i*h.n+j]
		if i == NoHop {
			return nil
		}
		path = append(path, i)
	}
	if i != j {
		return nil
	}

	return path
}
