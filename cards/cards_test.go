package cards_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ttrplan/cards"
	"github.com/katalvlaran/ttrplan/railmap"
	"github.com/katalvlaran/ttrplan/router"
)

func seg(a, b string, n int, c1, c2 railmap.Color) railmap.Connection {
	return railmap.Connection{From: a, To: b, Trains: n, Color1: c1, Color2: c2}
}

func TestFeasibility_CalgarySaltLakeTicket(t *testing.T) {
	r, err := router.New(railmap.MustUSA(), router.WithPointImportance(0.1))
	require.NoError(t, err)
	bundle, err := r.MinSpanningTreeOfShortestRoutes([]string{"Calgary", "Salt Lake City"})
	require.NoError(t, err)

	got, err := cards.Feasibility(bundle)
	require.NoError(t, err)
	want := cards.Summary{
		railmap.Purple: {Min: 3, Max: 3},
		railmap.Gray:   {Min: 4, Max: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestAlternatives_CrossProduct(t *testing.T) {
	bundle := []railmap.Connection{
		seg("A", "B", 2, railmap.Red, railmap.Blue),
		seg("B", "C", 3, railmap.Red, railmap.Green),
		seg("C", "D", 1, railmap.Gray, railmap.NoColor),
	}
	alts, err := cards.Alternatives(bundle)
	require.NoError(t, err)
	require.Len(t, alts, 4)
	assert.Equal(t, cards.Requirement{railmap.Red: 5, railmap.Gray: 1}, alts[0])
	assert.Equal(t, cards.Requirement{railmap.Red: 2, railmap.Green: 3, railmap.Gray: 1}, alts[1])
	assert.Equal(t, cards.Requirement{railmap.Blue: 2, railmap.Red: 3, railmap.Gray: 1}, alts[2])
	assert.Equal(t, cards.Requirement{railmap.Blue: 2, railmap.Green: 3, railmap.Gray: 1}, alts[3])

	got := cards.Summarize(alts)
	want := cards.Summary{
		railmap.Red:   {Min: 0, Max: 5},
		railmap.Blue:  {Min: 0, Max: 2},
		railmap.Green: {Min: 0, Max: 3},
		railmap.Gray:  {Min: 1, Max: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, got, railmap.Black)
}

func TestAlternatives_SameColorTwiceIsOneOption(t *testing.T) {
	alts, err := cards.Alternatives([]railmap.Connection{seg("A", "B", 1, railmap.Gray, railmap.Gray)})
	require.NoError(t, err)
	assert.Len(t, alts, 1)
}

func TestAlternatives_SkipEstablished(t *testing.T) {
	bundle := []railmap.Connection{
		seg("A", "B", 2, railmap.Red, railmap.Blue),
		seg("B", "C", 4, railmap.Yellow, railmap.NoColor),
	}
	s, err := cards.Feasibility(bundle, cards.WithSkip(railmap.NewSet("A|B")))
	require.NoError(t, err)
	assert.Equal(t, cards.Summary{railmap.Yellow: {Min: 4, Max: 4}}, s)
}

func TestAlternatives_Empty(t *testing.T) {
	alts, err := cards.Alternatives(nil)
	require.NoError(t, err)
	assert.Equal(t, []cards.Requirement{{}}, alts)
	assert.Empty(t, cards.Summarize(alts))
}

func TestAlternatives_Errors(t *testing.T) {
	_, err := cards.Alternatives([]railmap.Connection{seg("A", "B", 1, railmap.Color(42), railmap.NoColor)})
	assert.ErrorIs(t, err, railmap.ErrInvalidColor)

	bundle := []railmap.Connection{
		seg("A", "B", 1, railmap.Red, railmap.Blue),
		seg("B", "C", 1, railmap.Red, railmap.Blue),
		seg("C", "D", 1, railmap.Red, railmap.Blue),
	}
	_, err = cards.Alternatives(bundle, cards.WithMaxDualColor(2))
	assert.ErrorIs(t, err, cards.ErrTooManyAlternatives)
}

func TestSummary_TotalAndCovers(t *testing.T) {
	s := cards.Summary{railmap.Purple: {Min: 3, Max: 3}, railmap.Gray: {Min: 4, Max: 4}}
	lo, hi := s.Total()
	assert.Equal(t, 7, lo)
	assert.Equal(t, 7, hi)

	assert.True(t, s.Covers(cards.Requirement{railmap.Purple: 3, railmap.Gray: 5}))
	assert.False(t, s.Covers(cards.Requirement{railmap.Purple: 2, railmap.Gray: 5}))
}
