package railmap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ttrplan/railmap"
)

func TestUSA_Catalog(t *testing.T) {
	m, err := railmap.USA()
	require.NoError(t, err)

	assert.Equal(t, 78, m.Len())
	assert.Len(t, m.Cities(), 36)
	assert.Len(t, m.Tickets(), 30)

	c, err := m.Connection("Salt Lake City", "Helena")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Trains)
	assert.Equal(t, railmap.Purple, c.Color1)
	assert.False(t, c.Double())

	c, err = m.Connection("Denver", "Kansas City")
	require.NoError(t, err)
	assert.Equal(t, []railmap.Color{railmap.Black, railmap.Orange}, c.Colors())

	_, err = m.Connection("Miami", "Seattle")
	assert.ErrorIs(t, err, railmap.ErrConnectionNotFound)

	tk, ok := m.Ticket("Salt Lake City", "Calgary")
	require.True(t, ok)
	assert.Equal(t, 7, tk.Points)

	assert.Equal(t, []string{"Chicago", "Denver", "Duluth", "Helena", "Kansas City"}, m.Neighbors("Omaha"))
	assert.True(t, m.HasCity("Sault Ste. Marie"))
	assert.False(t, m.HasCity("Atlantis"))
}

func TestNewMap_Rejects(t *testing.T) {
	ab := railmap.Connection{From: "A", To: "B", Trains: 1, Color1: railmap.Red}

	_, err := railmap.NewMap([]railmap.Connection{ab, {From: "B", To: "A", Trains: 2, Color1: railmap.Blue}}, nil)
	assert.ErrorIs(t, err, railmap.ErrDuplicateConnection)

	_, err = railmap.NewMap([]railmap.Connection{ab}, []railmap.Ticket{{From: "A", To: "Z", Points: 3}})
	assert.ErrorIs(t, err, railmap.ErrInvalidTicket)

	_, err = railmap.NewMap([]railmap.Connection{ab}, []railmap.Ticket{{From: "A", To: "B", Points: 0}})
	assert.ErrorIs(t, err, railmap.ErrInvalidTicket)
}

func TestLoad_Errors(t *testing.T) {
	_, err := railmap.Load(strings.NewReader(`
connections:
  - {from: A, to: B, length: 2, color1: mauve}
`))
	assert.ErrorIs(t, err, railmap.ErrInvalidColor)

	_, err = railmap.Load(strings.NewReader(`
connections:
  - {from: A, to: B, length: 8, color1: red}
`))
	assert.ErrorIs(t, err, railmap.ErrInvalidLength)

	_, err = railmap.Load(strings.NewReader(`connections: [{from: A, to: B, length: 1, colour: red}]`))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestLoad_Minimal(t *testing.T) {
	m, err := railmap.Load(strings.NewReader(`
name: tiny
connections:
  - {from: A, to: B, length: 2, color1: red, color2: blue}
  - {from: B, to: C, length: 1, color1: gray}
tickets:
  - {from: A, to: C, points: 4}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, m.Cities())
	assert.Equal(t, []railmap.Ticket{{From: "A", To: "C", Points: 4}}, m.Tickets())
}
