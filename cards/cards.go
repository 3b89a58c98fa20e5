// Package cards computes the train-card requirements of claiming a bundle of
// segments.
//
// Each segment contributes one requirement vector per distinct color option
// (color → length). Vectors of different segments combine by full
// cross-product, summing per color, so k double-colored segments produce up
// to 2^k alternatives. Summarize then reduces the alternatives to a per-color
// (min, max) envelope: a color missing from some alternative has min 0, and a
// color no alternative needs is omitted.
//
// The cross-product is exponential; Alternatives refuses bundles with more
// than MaxDualColor double-colored segments.
package cards

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ttrplan/metrics"
	"github.com/katalvlaran/ttrplan/railmap"
)

// DefaultMaxDualColor bounds the cross-product at 2^16 alternatives.
const DefaultMaxDualColor = 16

// ErrTooManyAlternatives indicates a bundle whose cross-product exceeds the bound.
var ErrTooManyAlternatives = errors.New("cards: too many dual-color segments")

// Requirement maps a color to the number of cards of that color.
type Requirement map[railmap.Color]int

// Envelope is the range of cards of one color over all alternatives.
type Envelope struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Summary maps each needed color to its envelope.
type Summary map[railmap.Color]Envelope

// Options configures the calculator.
type Options struct {
	// Skip holds segments whose cost is already paid (established).
	Skip railmap.Set

	// MaxDualColor bounds the number of segments with two color options.
	MaxDualColor int
}

// Option mutates Options.
type Option func(*Options)

// WithSkip excludes already-built segments.
func WithSkip(skip railmap.Set) Option {
	return func(o *Options) { o.Skip = skip }
}

// WithMaxDualColor sets the cross-product bound.
func WithMaxDualColor(n int) Option {
	return func(o *Options) { o.MaxDualColor = n }
}

// Alternatives expands bundle into every requirement vector.
// An empty bundle yields one empty vector.
func Alternatives(bundle []railmap.Connection, opts ...Option) ([]Requirement, error) {
	o := Options{MaxDualColor: DefaultMaxDualColor}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDualColor < 0 {
		o.MaxDualColor = DefaultMaxDualColor
	}

	var dual int
	for _, c := range bundle {
		if o.Skip.Has(c.Key()) {
			continue
		}
		if !c.Color1.Valid() || (c.Color2 != railmap.NoColor && !c.Color2.Valid()) {
			return nil, fmt.Errorf("%w: segment %s", railmap.ErrInvalidColor, c.Key())
		}
		if len(c.Colors()) > 1 {
			dual++
		}
	}
	if dual > o.MaxDualColor {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyAlternatives, dual, o.MaxDualColor)
	}

	alts := []Requirement{{}}
	for _, c := range bundle {
		if o.Skip.Has(c.Key()) {
			continue
		}
		options := c.Colors()
		next := make([]Requirement, 0, len(alts)*len(options))
		for _, alt := range alts {
			for _, color := range options {
				r := make(Requirement, len(alt)+1)
				for k, v := range alt {
					r[k] = v
				}
				r[color] += c.Trains
				next = append(next, r)
			}
		}
		alts = next
	}
	metrics.CardAlternatives.Observe(float64(len(alts)))

	return alts, nil
}

// Summarize reduces alternatives to per-color envelopes.
func Summarize(alts []Requirement) Summary {
	s := make(Summary)
	for _, alt := range alts {
		for color, n := range alt {
			if n <= 0 {
				continue
			}
			e, ok := s[color]
			if !ok {
				e = Envelope{Min: n, Max: n}
			}
			e.Min = min(e.Min, n)
			e.Max = max(e.Max, n)
			s[color] = e
		}
	}
	// A color absent from any alternative can be skipped entirely there.
	for color, e := range s {
		for _, alt := range alts {
			if alt[color] == 0 {
				e.Min = 0
				s[color] = e
				break
			}
		}
	}

	return s
}

// Feasibility is Alternatives followed by Summarize.
func Feasibility(bundle []railmap.Connection, opts ...Option) (Summary, error) {
	alts, err := Alternatives(bundle, opts...)
	if err != nil {
		return nil, err
	}
	metrics.Queries.WithLabelValues(metrics.KindCards).Inc()

	return Summarize(alts), nil
}

// Total returns the smallest and largest card counts over all colors.
// Since every alternative needs exactly the bundle's trains, the two are
// usually equal; they differ only when envelopes are read independently.
func (s Summary) Total() (lo, hi int) {
	for _, e := range s {
		lo += e.Min
		hi += e.Max
	}

	return lo, hi
}

// Covers reports whether hand holds enough cards of every color for the
// minimum of each envelope. It is a necessary, not sufficient, condition.
func (s Summary) Covers(hand Requirement) bool {
	for color, e := range s {
		if hand[color] < e.Min {
			return false
		}
	}

	return true
}
