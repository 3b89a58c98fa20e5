package railmap

import (
	"fmt"
	"sort"
)

// Map is an immutable board: segments in dataset order, tickets, and the
// derived city list and adjacency. Safe for concurrent reads.
type Map struct {
	connections []Connection
	byKey       map[Key]int
	tickets     []Ticket
	cities      []string            // first-encounter order
	adjacent    map[string][]string // city → neighbors, sorted
}

// NewMap validates connections and tickets and builds the catalog.
// Tickets must reference cities that appear on some segment.
func NewMap(connections []Connection, tickets []Ticket) (*Map, error) {
	m := &Map{
		connections: make([]Connection, 0, len(connections)),
		byKey:       make(map[Key]int, len(connections)),
		adjacent:    make(map[string][]string),
	}

	for _, c := range connections {
		c, err := NewConnection(c.From, c.To, c.Trains, c.Color1, c.Color2)
		if err != nil {
			return nil, err
		}
		k := c.Key()
		if _, dup := m.byKey[k]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateConnection, k)
		}
		m.byKey[k] = len(m.connections)
		m.connections = append(m.connections, c)

		for _, city := range [2]string{c.From, c.To} {
			if _, seen := m.adjacent[city]; !seen {
				m.cities = append(m.cities, city)
			}
		}
		m.adjacent[c.From] = append(m.adjacent[c.From], c.To)
		m.adjacent[c.To] = append(m.adjacent[c.To], c.From)
	}
	for _, ns := range m.adjacent {
		sort.Strings(ns)
	}

	for _, t := range tickets {
		if t.Points <= 0 || t.From == t.To || !m.HasCity(t.From) || !m.HasCity(t.To) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTicket, t)
		}
		m.tickets = append(m.tickets, t)
	}

	return m, nil
}

// Connections returns a copy of all segments in dataset order.
func (m *Map) Connections() []Connection {
	out := make([]Connection, len(m.connections))
	copy(out, m.connections)

	return out
}

// Len returns the number of segments.
func (m *Map) Len() int { return len(m.connections) }

// Connection returns the direct segment between a and b in either order.
func (m *Map) Connection(a, b string) (Connection, error) {
	i, ok := m.byKey[KeyOf(a, b)]
	if !ok {
		return Connection{}, fmt.Errorf("%w: %s-%s", ErrConnectionNotFound, a, b)
	}

	return m.connections[i], nil
}

// Lookup returns the segment for key k.
func (m *Map) Lookup(k Key) (Connection, bool) {
	i, ok := m.byKey[k]
	if !ok {
		return Connection{}, false
	}

	return m.connections[i], true
}

// Tickets returns a copy of the destination tickets.
func (m *Map) Tickets() []Ticket {
	out := make([]Ticket, len(m.tickets))
	copy(out, m.tickets)

	return out
}

// Ticket finds the ticket joining a and b in either order.
func (m *Map) Ticket(a, b string) (Ticket, bool) {
	k := KeyOf(a, b)
	for _, t := range m.tickets {
		if t.Key() == k {
			return t, true
		}
	}

	return Ticket{}, false
}

// Cities returns city names in first-encounter order.
func (m *Map) Cities() []string {
	out := make([]string, len(m.cities))
	copy(out, m.cities)

	return out
}

// HasCity reports whether city is an endpoint of any segment.
func (m *Map) HasCity(city string) bool {
	_, ok := m.adjacent[city]
	return ok
}

// Neighbors returns the cities one segment away from city, sorted.
func (m *Map) Neighbors(city string) []string {
	ns := m.adjacent[city]
	out := make([]string, len(ns))
	copy(out, ns)

	return out
}
