package network

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/ttrplan/apsp"
	"github.com/katalvlaran/ttrplan/cards"
	"github.com/katalvlaran/ttrplan/metrics"
	"github.com/katalvlaran/ttrplan/railmap"
	"github.com/katalvlaran/ttrplan/router"
)

// DefaultTrains is the number of trains each network starts with.
const DefaultTrains = 45

// Options configures a State.
type Options struct {
	Name            string
	Trains          int
	PointImportance float64
	MaxWaypoints    int
	MaxDualColor    int
}

// Option mutates Options.
type Option func(*Options)

// WithName labels the state (logs, API responses).
func WithName(name string) Option { return func(o *Options) { o.Name = name } }

// WithTrains sets the starting train budget.
func WithTrains(n int) Option { return func(o *Options) { o.Trains = n } }

// WithPointImportance sets the router weighting.
func WithPointImportance(pi float64) Option {
	return func(o *Options) { o.PointImportance = pi }
}

// WithMaxWaypoints bounds visiting-order queries.
func WithMaxWaypoints(n int) Option { return func(o *Options) { o.MaxWaypoints = n } }

// WithMaxDualColor bounds card cross-products.
func WithMaxDualColor(n int) Option { return func(o *Options) { o.MaxDualColor = n } }

// DefaultOptions returns the standard board setup.
func DefaultOptions() Options {
	return Options{
		Trains:       DefaultTrains,
		MaxWaypoints: apsp.DefaultMaxWaypoints,
		MaxDualColor: cards.DefaultMaxDualColor,
	}
}

// State is one network's constraints, tickets and router.
type State struct {
	id          uuid.UUID
	opts        Options
	m           *railmap.Map
	router      *router.Router
	cannotPass  railmap.Set
	established railmap.Set
	tickets     []railmap.Ticket
}

// NewState builds an unconstrained network over m.
func NewState(m *railmap.Map, opts ...Option) (*State, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r, err := router.New(m,
		router.WithPointImportance(o.PointImportance),
		router.WithMaxWaypoints(o.MaxWaypoints),
	)
	if err != nil {
		return nil, err
	}

	return &State{
		id:          uuid.New(),
		opts:        o,
		m:           m,
		router:      r,
		cannotPass:  railmap.NewSet(),
		established: railmap.NewSet(),
	}, nil
}

// ID is the identity used for track ownership.
func (s *State) ID() uuid.UUID { return s.id }

// Name returns the configured label.
func (s *State) Name() string { return s.opts.Name }

// Router exposes the query engine. Callers must not change its constraints
// directly; use the State methods.
func (s *State) Router() *router.Router { return s.router }

// CannotPass returns the forbidden segment keys, sorted.
func (s *State) CannotPass() []railmap.Key { return s.cannotPass.Keys() }

// Established returns the built segment keys, sorted.
func (s *State) Established() []railmap.Key { return s.established.Keys() }

// IsEstablished reports whether the network built the segment a-b.
func (s *State) IsEstablished(a, b string) bool { return s.established.Has(railmap.KeyOf(a, b)) }

// IsBlocked reports whether the segment a-b is forbidden to the network.
func (s *State) IsBlocked(a, b string) bool { return s.cannotPass.Has(railmap.KeyOf(a, b)) }

func (s *State) connection(a, b string) (railmap.Connection, error) {
	return s.m.Connection(a, b)
}

// AddCannotPass forbids the segment a-b.
func (s *State) AddCannotPass(a, b string) error {
	c, err := s.connection(a, b)
	if err != nil {
		return err
	}

	return s.addCannotPass(c.Key())
}

// RemoveCannotPass lifts the prohibition on a-b.
func (s *State) RemoveCannotPass(a, b string) error {
	c, err := s.connection(a, b)
	if err != nil {
		return err
	}

	return s.removeCannotPass(c.Key())
}

// AddEstablished marks a-b as built by this network.
func (s *State) AddEstablished(a, b string) error {
	c, err := s.connection(a, b)
	if err != nil {
		return err
	}

	return s.addEstablished(c.Key())
}

// RemoveEstablished reverts AddEstablished.
func (s *State) RemoveEstablished(a, b string) error {
	c, err := s.connection(a, b)
	if err != nil {
		return err
	}

	return s.removeEstablished(c.Key())
}

func (s *State) addCannotPass(k railmap.Key) error {
	if s.established.Has(k) {
		return fmt.Errorf("%w: %s is established", ErrConstraintConflict, k)
	}
	if !s.cannotPass.Add(k) {
		return fmt.Errorf("%w: %s already cannot-pass", ErrConstraintConflict, k)
	}

	return s.apply("cannot_pass", "add", func() { s.cannotPass.Remove(k) })
}

func (s *State) removeCannotPass(k railmap.Key) error {
	if !s.cannotPass.Remove(k) {
		return fmt.Errorf("%w: %s is not cannot-pass", ErrConstraintConflict, k)
	}

	return s.apply("cannot_pass", "remove", func() { s.cannotPass.Add(k) })
}

func (s *State) addEstablished(k railmap.Key) error {
	if s.cannotPass.Has(k) {
		return fmt.Errorf("%w: %s is cannot-pass", ErrConstraintConflict, k)
	}
	if !s.established.Add(k) {
		return fmt.Errorf("%w: %s already established", ErrConstraintConflict, k)
	}

	return s.apply("established", "add", func() { s.established.Remove(k) })
}

func (s *State) removeEstablished(k railmap.Key) error {
	if !s.established.Remove(k) {
		return fmt.Errorf("%w: %s is not established", ErrConstraintConflict, k)
	}

	return s.apply("established", "remove", func() { s.established.Add(k) })
}

// apply pushes the sets into the router; undo restores the set on failure.
func (s *State) apply(set, op string, undo func()) error {
	if err := s.router.SetConstraints(s.cannotPass, s.established); err != nil {
		undo()
		return err
	}
	metrics.ConstraintChanges.WithLabelValues(set, op).Inc()

	return nil
}

// SetPointImportance retunes the router.
func (s *State) SetPointImportance(pi float64) error {
	if err := s.router.SetPointImportance(pi); err != nil {
		return err
	}
	s.opts.PointImportance = pi

	return nil
}

// AvailableTrains is the starting budget minus the trains of built segments.
func (s *State) AvailableTrains() int {
	n := s.opts.Trains
	for k := range s.established {
		if c, ok := s.m.Lookup(k); ok {
			n -= c.Trains
		}
	}

	return n
}

// CanAfford reports whether the unbuilt part of bundle fits the budget.
func (s *State) CanAfford(bundle []railmap.Connection) bool {
	return s.router.RequiredTrains(bundle) <= s.AvailableTrains()
}

// SelectTicket adds the catalog ticket a-b to the network's goals.
func (s *State) SelectTicket(a, b string) error {
	t, ok := s.m.Ticket(a, b)
	if !ok {
		return fmt.Errorf("%w: %s-%s", ErrUnknownTicket, a, b)
	}
	for _, have := range s.tickets {
		if have.Key() == t.Key() {
			return nil
		}
	}
	s.tickets = append(s.tickets, t)

	return nil
}

// DropTicket removes a selected ticket.
func (s *State) DropTicket(a, b string) error {
	k := railmap.KeyOf(a, b)
	for i, t := range s.tickets {
		if t.Key() == k {
			s.tickets = append(s.tickets[:i], s.tickets[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %s-%s not selected", ErrUnknownTicket, a, b)
}

// Tickets returns the selected tickets in selection order.
func (s *State) Tickets() []railmap.Ticket {
	out := make([]railmap.Ticket, len(s.tickets))
	copy(out, s.tickets)

	return out
}

// TicketCities lists the endpoints of the selected tickets, first
// occurrence order.
func (s *State) TicketCities() []string {
	return dedupe(s.ticketCities())
}

func (s *State) ticketCities() []string {
	out := make([]string, 0, 2*len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t.From, t.To)
	}

	return out
}

// Bundle connects cities through the cheapest segments. With expand set the
// greedy city-set expansion is applied.
func (s *State) Bundle(cities []string, expand bool) (router.Expansion, error) {
	if expand {
		return s.router.OptimalCitySetExpansion(cities)
	}
	bundle, err := s.router.MinSpanningTreeOfShortestRoutes(cities)
	if err != nil {
		return router.Expansion{}, err
	}

	return router.Expansion{
		Cities:         dedupe(cities),
		Bundle:         bundle,
		RequiredTrains: s.router.RequiredTrains(bundle),
		GainPoints:     s.router.GainPoints(bundle),
	}, nil
}

// TicketBundle is Bundle over every city of the selected tickets.
func (s *State) TicketBundle(expand bool) (router.Expansion, error) {
	return s.Bundle(s.ticketCities(), expand)
}

// Cards returns the card envelope of bundle, ignoring built segments.
func (s *State) Cards(bundle []railmap.Connection) (cards.Summary, error) {
	return cards.Feasibility(bundle,
		cards.WithSkip(s.established),
		cards.WithMaxDualColor(s.opts.MaxDualColor),
	)
}

// TicketCards is Cards over TicketBundle.
func (s *State) TicketCards(expand bool) (cards.Summary, error) {
	exp, err := s.TicketBundle(expand)
	if err != nil {
		return nil, err
	}

	return s.Cards(exp.Bundle)
}

// TicketReport is a derived progress snapshot of one ticket.
type TicketReport struct {
	Ticket               railmap.Ticket `json:"ticket"`
	Reachable            bool           `json:"reachable"`
	Completed            bool           `json:"completed"`
	CompletedConnections int            `json:"completed_connections"`
	RemainingConnections int            `json:"remaining_connections"`
	RemainingTrains      int            `json:"remaining_trains"`
}

// Reports recomputes the snapshot of every selected ticket, ordered for
// display: reachable first, then fewest remaining trains, then most points.
func (s *State) Reports() ([]TicketReport, error) {
	metrics.Queries.WithLabelValues(metrics.KindReports).Inc()

	out := make([]TicketReport, 0, len(s.tickets))
	for _, t := range s.tickets {
		route, err := s.router.ShortestRoute(t.From, t.To)
		if err != nil {
			return nil, err
		}
		rep := TicketReport{Ticket: t, Reachable: !route.Empty()}
		for _, c := range route.Connections() {
			if s.established.Has(c.Key()) {
				rep.CompletedConnections++
			} else {
				rep.RemainingConnections++
				rep.RemainingTrains += c.Trains
			}
		}
		rep.Completed = rep.Reachable && rep.RemainingConnections == 0
		out = append(out, rep)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Reachable != b.Reachable {
			return a.Reachable
		}
		if a.RemainingTrains != b.RemainingTrains {
			return a.RemainingTrains < b.RemainingTrains
		}

		return a.Ticket.Points > b.Ticket.Points
	})

	return out, nil
}

func dedupe(cities []string) []string {
	seen := make(map[string]bool, len(cities))
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	return out
}
