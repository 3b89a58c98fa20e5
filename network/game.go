package network

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/ttrplan/railmap"
)

// Side names one of the two networks of a Game.
type Side int

const (
	Self Side = iota
	Opponent
)

// String returns "self" or "opponent".
func (s Side) String() string {
	switch s {
	case Self:
		return "self"
	case Opponent:
		return "opponent"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide is the inverse of String. An empty name means Self.
func ParseSide(name string) (Side, error) {
	switch name {
	case "", "self":
		return Self, nil
	case "opponent":
		return Opponent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSide, name)
	}
}

func (s Side) other() Side { return 1 - s }

// Game couples two networks over one map. A segment established on one side
// becomes cannot-pass on the other; undoing the establishment undoes the
// mirror. All methods are safe for concurrent use.
type Game struct {
	mu    sync.Mutex
	m     *railmap.Map
	board *Ownership
	sides [2]*State
	// mirrored[s] holds the cannot-pass keys of side s that were added
	// because the other side established them.
	mirrored [2]railmap.Set
}

// NewGame creates both networks with the same options.
func NewGame(m *railmap.Map, opts ...Option) (*Game, error) {
	g := &Game{
		m:        m,
		board:    NewOwnership(),
		mirrored: [2]railmap.Set{railmap.NewSet(), railmap.NewSet()},
	}
	for _, side := range []Side{Self, Opponent} {
		st, err := NewState(m, append(opts, WithName(side.String()))...)
		if err != nil {
			return nil, err
		}
		g.sides[side] = st
	}

	return g, nil
}

// Map returns the shared catalog.
func (g *Game) Map() *railmap.Map { return g.m }

func (g *Game) state(side Side) (*State, error) {
	if side != Self && side != Opponent {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSide, int(side))
	}

	return g.sides[side], nil
}

// Establish records that side built track t of a-b.
func (g *Game) Establish(side Side, a, b string, t Track) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.state(side)
	if err != nil {
		return err
	}
	c, err := g.m.Connection(a, b)
	if err != nil {
		return err
	}
	k := c.Key()
	if s.established.Has(k) || s.cannotPass.Has(k) {
		return fmt.Errorf("%w: %s", ErrConstraintConflict, k)
	}
	if err := g.board.Claim(c, t, s.id); err != nil {
		return err
	}
	if err := s.addEstablished(k); err != nil {
		g.board.Release(c, s.id)
		return err
	}

	peer := g.sides[side.other()]
	if peer.established.Has(k) || peer.cannotPass.Has(k) {
		return nil
	}
	if err := peer.addCannotPass(k); err != nil {
		_ = s.removeEstablished(k)
		g.board.Release(c, s.id)
		return err
	}
	g.mirrored[side.other()].Add(k)

	return nil
}

// Unestablish reverts Establish, including the mirrored prohibition.
func (g *Game) Unestablish(side Side, a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.state(side)
	if err != nil {
		return err
	}
	c, err := g.m.Connection(a, b)
	if err != nil {
		return err
	}
	k := c.Key()
	if !s.established.Has(k) {
		return fmt.Errorf("%w: %s is not established", ErrConstraintConflict, k)
	}
	if !g.board.Holds(c, s.id) {
		return fmt.Errorf("%w: %s", ErrNotOwner, k)
	}
	if err := s.removeEstablished(k); err != nil {
		return err
	}
	g.board.Release(c, s.id)

	other := side.other()
	if g.mirrored[other].Remove(k) {
		if err := g.sides[other].removeCannotPass(k); err != nil {
			g.mirrored[other].Add(k)
			return err
		}
	}

	return nil
}

// Block forbids a-b to side.
func (g *Game) Block(side Side, a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.state(side)
	if err != nil {
		return err
	}

	return s.AddCannotPass(a, b)
}

// Unblock lifts a prohibition added with Block. Prohibitions mirrored from
// the other side go away only with Unestablish.
func (g *Game) Unblock(side Side, a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.state(side)
	if err != nil {
		return err
	}
	if g.mirrored[side].Has(railmap.KeyOf(a, b)) {
		return fmt.Errorf("%w: %s is held by the other network", ErrConstraintConflict, railmap.KeyOf(a, b))
	}

	return s.RemoveCannotPass(a, b)
}

// SelectTicket adds a catalog ticket to side.
func (g *Game) SelectTicket(side Side, a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.state(side)
	if err != nil {
		return err
	}

	return s.SelectTicket(a, b)
}

// DropTicket removes a selected ticket from side.
func (g *Game) DropTicket(side Side, a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.state(side)
	if err != nil {
		return err
	}

	return s.DropTicket(a, b)
}

// SetPointImportance retunes both networks. On failure neither changes.
func (g *Game) SetPointImportance(pi float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	prev := g.sides[Self].router.PointImportance()
	if err := g.sides[Self].SetPointImportance(pi); err != nil {
		return err
	}
	if err := g.sides[Opponent].SetPointImportance(pi); err != nil {
		_ = g.sides[Self].SetPointImportance(prev)
		return err
	}

	return nil
}

// Owner returns the side holding track t of a-b, or false when it is free.
func (g *Game) Owner(a, b string, t Track) (Side, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, err := g.m.Connection(a, b)
	if err != nil {
		return 0, false, err
	}
	id, err := g.board.Owner(c, t)
	if err != nil {
		return 0, false, err
	}
	for _, side := range []Side{Self, Opponent} {
		if g.sides[side].id == id {
			return side, true, nil
		}
	}

	return 0, false, nil
}

// View runs fn with exclusive access to side's state. fn must not retain s
// or call back into g.
func (g *Game) View(side Side, fn func(s *State) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.state(side)
	if err != nil {
		return err
	}

	return fn(s)
}
