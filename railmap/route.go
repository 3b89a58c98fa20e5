package railmap

import "fmt"

// Route is an ordered, contiguous sequence of segments: every pair of
// consecutive segments shares a city.
type Route struct {
	connections []Connection
}

// NewRoute validates contiguity. An empty route is valid.
func NewRoute(connections ...Connection) (Route, error) {
	for i := 1; i < len(connections); i++ {
		if _, ok := connections[i-1].Shared(connections[i]); !ok {
			return Route{}, fmt.Errorf("%w: %s does not touch %s",
				ErrInvalidRoute, connections[i-1], connections[i])
		}
	}
	cp := make([]Connection, len(connections))
	copy(cp, connections)

	return Route{connections: cp}, nil
}

// RouteFromPath converts a city walk into the segments joining each leg.
func RouteFromPath(m *Map, cities []string) (Route, error) {
	if len(cities) < 2 {
		return Route{}, nil
	}
	conns := make([]Connection, 0, len(cities)-1)
	for i := 1; i < len(cities); i++ {
		c, err := m.Connection(cities[i-1], cities[i])
		if err != nil {
			return Route{}, err
		}
		conns = append(conns, c)
	}

	return NewRoute(conns...)
}

// Connections returns a copy of the segments.
func (r Route) Connections() []Connection {
	out := make([]Connection, len(r.connections))
	copy(out, r.connections)

	return out
}

// Len returns the number of segments.
func (r Route) Len() int { return len(r.connections) }

// Empty reports whether the route has no segments.
func (r Route) Empty() bool { return len(r.connections) == 0 }

// Cities walks the route and returns the visited cities in order.
func (r Route) Cities() []string {
	switch len(r.connections) {
	case 0:
		return []string{}
	case 1:
		return []string{r.connections[0].From, r.connections[0].To}
	}

	// Start from the endpoint of the first segment not shared with the second.
	first := r.connections[0]
	shared, _ := first.Shared(r.connections[1])
	start, _ := first.Other(shared)

	cities := []string{start}
	cur := start
	for _, c := range r.connections {
		next, ok := c.Other(cur)
		if !ok { // branching sequence; the walk ends here
			break
		}
		cities = append(cities, next)
		cur = next
	}

	return cities
}

// Trains sums segment lengths.
func (r Route) Trains() int {
	var n int
	for _, c := range r.connections {
		n += c.Trains
	}

	return n
}

// Points sums segment scores.
func (r Route) Points() int {
	var n int
	for _, c := range r.connections {
		n += c.Points()
	}

	return n
}
