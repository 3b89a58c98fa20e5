package railmap

import (
	"fmt"
	"strings"
)

// MaxPointImportance is the largest accepted pointImportance. At 0.39 the
// heaviest discount (6 trains, 15 points) still leaves a positive weight.
const MaxPointImportance = 0.39

// pointTable maps segment length to the points scored for claiming it.
var pointTable = [...]int{0, 1, 2, 4, 7, 10, 15}

// Points returns the score of a segment of the given length.
func Points(trains int) (int, error) {
	if trains < 1 || trains >= len(pointTable) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, trains)
	}

	return pointTable[trains], nil
}

// Key is the canonical identity of an unordered city pair: "min|max".
type Key string

// KeyOf builds the Key for cities a and b in either order.
func KeyOf(a, b string) Key {
	if b < a {
		a, b = b, a
	}

	return Key(a + "|" + b)
}

// Cities splits the key back into its two city names.
func (k Key) Cities() (string, string) {
	a, b, _ := strings.Cut(string(k), "|")
	return a, b
}

// Connection is an undirected segment between two cities. Color2 is NoColor
// for a single-track segment; otherwise the pair carries two parallel tracks.
type Connection struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Trains int    `json:"trains"`
	Color1 Color  `json:"color1"`
	Color2 Color  `json:"color2,omitempty"`
}

// NewConnection validates and builds a Connection.
func NewConnection(from, to string, trains int, color1, color2 Color) (Connection, error) {
	if from == "" || to == "" || from == to {
		return Connection{}, fmt.Errorf("%w: %q-%q", ErrInvalidCity, from, to)
	}
	if _, err := Points(trains); err != nil {
		return Connection{}, fmt.Errorf("%s-%s: %w", from, to, err)
	}
	if !color1.Valid() {
		return Connection{}, fmt.Errorf("%s-%s color1: %w", from, to, ErrInvalidColor)
	}
	if color2 != NoColor && !color2.Valid() {
		return Connection{}, fmt.Errorf("%s-%s color2: %w", from, to, ErrInvalidColor)
	}

	return Connection{From: from, To: to, Trains: trains, Color1: color1, Color2: color2}, nil
}

// Key returns the canonical segment identity.
func (c Connection) Key() Key { return KeyOf(c.From, c.To) }

// Equal reports whether c and o join the same unordered city pair.
// Weight, colors and direction do not take part in identity.
func (c Connection) Equal(o Connection) bool { return c.Key() == o.Key() }

// Double reports whether the segment has a second track.
func (c Connection) Double() bool { return c.Color2 != NoColor }

// Tracks returns 1 or 2.
func (c Connection) Tracks() int {
	if c.Double() {
		return 2
	}

	return 1
}

// Colors lists the distinct color options for claiming the segment.
func (c Connection) Colors() []Color {
	if !c.Double() || c.Color2 == c.Color1 {
		return []Color{c.Color1}
	}

	return []Color{c.Color1, c.Color2}
}

// Points returns the score for claiming one track of c.
func (c Connection) Points() int {
	p, _ := Points(c.Trains) // validated at construction
	return p
}

// Weight returns trains − pointImportance·points.
func (c Connection) Weight(pointImportance float64) float64 {
	return float64(c.Trains) - pointImportance*float64(c.Points())
}

// Has reports whether city is an endpoint of c.
func (c Connection) Has(city string) bool { return c.From == city || c.To == city }

// Other returns the endpoint opposite to city.
func (c Connection) Other(city string) (string, bool) {
	switch city {
	case c.From:
		return c.To, true
	case c.To:
		return c.From, true
	}

	return "", false
}

// Shared returns a city that both c and o touch.
func (c Connection) Shared(o Connection) (string, bool) {
	switch {
	case o.Has(c.From):
		return c.From, true
	case o.Has(c.To):
		return c.To, true
	}

	return "", false
}

func (c Connection) String() string {
	if c.Double() {
		return fmt.Sprintf("%s-%s(%d %s/%s)", c.From, c.To, c.Trains, c.Color1, c.Color2)
	}

	return fmt.Sprintf("%s-%s(%d %s)", c.From, c.To, c.Trains, c.Color1)
}

// Ticket is a destination card: connect From and To to score Points.
type Ticket struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Points int    `json:"points"`
}

// Key returns the canonical unordered pair of the ticket.
func (t Ticket) Key() Key { return KeyOf(t.From, t.To) }

func (t Ticket) String() string {
	return fmt.Sprintf("%s-%s(%d)", t.From, t.To, t.Points)
}
