package router

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ttrplan/apsp"
	"github.com/katalvlaran/ttrplan/railmap"
)

// Sentinel errors returned by the router.
var (
	// ErrUnknownCity indicates a city that is not on the map. It wraps
	// apsp.ErrUnknownNode so either sentinel matches.
	ErrUnknownCity = fmt.Errorf("router: unknown city: %w", apsp.ErrUnknownNode)

	// ErrBadPointImportance indicates a pointImportance outside [0, railmap.MaxPointImportance].
	ErrBadPointImportance = errors.New("router: pointImportance out of range")

	// ErrNilMap indicates New was called without a map.
	ErrNilMap = errors.New("router: map is nil")
)

// Override is the routing treatment of one segment.
type Override int

const (
	// Normal segments weigh trains − pointImportance·points.
	Normal Override = iota
	// Blocked segments weigh +Inf.
	Blocked
	// Free segments weigh 0.
	Free
)

func (o Override) String() string {
	switch o {
	case Blocked:
		return "blocked"
	case Free:
		return "free"
	default:
		return "normal"
	}
}

// Options configures a Router.
type Options struct {
	// PointImportance blends pure distance (0) with point-discounted distance
	// (up to railmap.MaxPointImportance).
	PointImportance float64

	// MaxWaypoints bounds VisitingRoute.
	MaxWaypoints int
}

// Option mutates Options.
type Option func(*Options)

// WithPointImportance sets the initial pointImportance.
func WithPointImportance(pi float64) Option {
	return func(o *Options) { o.PointImportance = pi }
}

// WithMaxWaypoints sets the VisitingRoute bound.
func WithMaxWaypoints(n int) Option {
	return func(o *Options) { o.MaxWaypoints = n }
}

// DefaultOptions returns pointImportance 0 and apsp.DefaultMaxWaypoints.
func DefaultOptions() Options {
	return Options{PointImportance: 0, MaxWaypoints: apsp.DefaultMaxWaypoints}
}

// Expansion is the result of OptimalCitySetExpansion.
type Expansion struct {
	Cities         []string             `json:"cities"`
	Bundle         []railmap.Connection `json:"bundle"`
	RequiredTrains int                  `json:"required_trains"`
	GainPoints     int                  `json:"gain_points"`
}

func validPointImportance(pi float64) error {
	if !(pi >= 0 && pi <= railmap.MaxPointImportance) { // also rejects NaN
		return fmt.Errorf("%w: %g", ErrBadPointImportance, pi)
	}

	return nil
}
