package network

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/ttrplan/railmap"
)

// Track selects one lane of a segment.
type Track int

const (
	Track1 Track = 1
	Track2 Track = 2
)

// Ownership is the per-track owner ledger shared by the networks of one
// board. uuid.Nil means unowned.
type Ownership struct {
	owners map[railmap.Key][2]uuid.UUID
}

// NewOwnership returns an empty ledger.
func NewOwnership() *Ownership {
	return &Ownership{owners: make(map[railmap.Key][2]uuid.UUID)}
}

func checkTrack(c railmap.Connection, t Track) error {
	if t != Track1 && t != Track2 {
		return fmt.Errorf("%w: %d on %s", ErrInvalidTrack, int(t), c.Key())
	}
	if t == Track2 && !c.Double() {
		return fmt.Errorf("%w: %s has a single track", ErrInvalidTrack, c.Key())
	}

	return nil
}

// Owner returns the holder of track t of c (uuid.Nil when free).
func (o *Ownership) Owner(c railmap.Connection, t Track) (uuid.UUID, error) {
	if err := checkTrack(c, t); err != nil {
		return uuid.Nil, err
	}

	return o.owners[c.Key()][t-1], nil
}

// Claim binds track t of c to owner. Claiming a track one already holds is
// a no-op.
func (o *Ownership) Claim(c railmap.Connection, t Track, owner uuid.UUID) error {
	if err := checkTrack(c, t); err != nil {
		return err
	}
	slots := o.owners[c.Key()]
	switch slots[t-1] {
	case owner:
		return nil
	case uuid.Nil:
		slots[t-1] = owner
		o.owners[c.Key()] = slots
		return nil
	default:
		return fmt.Errorf("%w: %s track %d", ErrTrackOwned, c.Key(), int(t))
	}
}

// Release frees every track of c held by owner and returns how many were freed.
func (o *Ownership) Release(c railmap.Connection, owner uuid.UUID) int {
	slots, ok := o.owners[c.Key()]
	if !ok {
		return 0
	}
	var n int
	for i := range slots {
		if slots[i] == owner && owner != uuid.Nil {
			slots[i] = uuid.Nil
			n++
		}
	}
	if slots == [2]uuid.UUID{} {
		delete(o.owners, c.Key())
	} else {
		o.owners[c.Key()] = slots
	}

	return n
}

// Holds reports whether owner holds any track of c.
func (o *Ownership) Holds(c railmap.Connection, owner uuid.UUID) bool {
	slots := o.owners[c.Key()]
	return owner != uuid.Nil && (slots[0] == owner || slots[1] == owner)
}
