package apsp

import "errors"

// Sentinel errors returned by the apsp package.
var (
	// ErrUnknownNode indicates a query referenced a name that no edge mentions.
	ErrUnknownNode = errors.New("apsp: unknown node")

	// ErrTooManyWaypoints indicates a visiting-order query above the permutation bound.
	ErrTooManyWaypoints = errors.New("apsp: too many waypoints for exact search")

	// ErrBadEdge indicates an edge with an empty endpoint or a NaN/negative weight.
	ErrBadEdge = errors.New("apsp: invalid edge")
)

// DefaultMaxWaypoints bounds ShortestVisitingPath: 8! = 40320 orderings.
const DefaultMaxWaypoints = 8

// Edge is a weighted link between two named nodes. Weight may be +Inf, in
// which case both endpoints are registered but no path uses the edge.
type Edge struct {
	From, To string
	Weight   float64
}

// Options configures Graph construction.
type Options struct {
	// Directed makes each edge one-way From→To. The planner always builds
	// undirected graphs; the flag exists for completeness and testing.
	Directed bool

	// MaxWaypoints bounds ShortestVisitingPath. Values < 1 fall back to
	// DefaultMaxWaypoints.
	MaxWaypoints int
}

// Option mutates Options.
type Option func(*Options)

// WithDirected sets edge directedness.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithMaxWaypoints sets the permutation bound for ShortestVisitingPath.
func WithMaxWaypoints(n int) Option {
	return func(o *Options) { o.MaxWaypoints = n }
}

// DefaultOptions returns undirected construction with DefaultMaxWaypoints.
func DefaultOptions() Options {
	return Options{Directed: false, MaxWaypoints: DefaultMaxWaypoints}
}
