package hexgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexroute/astrotrade/hexgrid"
)

// TestDistance_SameSector reproduces spec.md §8 scenario 4: "3110" and
// "3010" in the same sector are adjacent (distance 1); "3110" and "3212"
// are three hexes apart. Both fixtures are confirmed against
// original_source/src/tests.rs::test_straight_line_distance.
func TestDistance_SameSector(t *testing.T) {
	hx1, hy1, err := hexgrid.ParseHexLabel("3110")
	require.NoError(t, err)
	hx2, hy2, err := hexgrid.ParseHexLabel("3010")
	require.NoError(t, err)
	hx3, hy3, err := hexgrid.ParseHexLabel("3212")
	require.NoError(t, err)

	a := hexgrid.NewCoords(0, 0, hx1, hy1)
	b := hexgrid.NewCoords(0, 0, hx2, hy2)
	c := hexgrid.NewCoords(0, 0, hx3, hy3)

	require.Equal(t, 1, hexgrid.Distance(a, b))
	require.Equal(t, 3, hexgrid.Distance(a, c))
	// Symmetry.
	require.Equal(t, hexgrid.Distance(a, b), hexgrid.Distance(b, a))
	require.Equal(t, hexgrid.Distance(a, c), hexgrid.Distance(c, a))
}

// TestDistance_AdjacentSectors checks that absolute coordinates correctly
// span a sector boundary without any special wrapping logic: a world in
// the rightmost column (32) of sector (0,0) and a world at hex column 1
// of the neighbouring sector (1,0) are adjacent.
func TestDistance_AdjacentSectors(t *testing.T) {
	a := hexgrid.NewCoords(0, 0, 32, 20) // rightmost column of sector (0,0)
	b := hexgrid.NewCoords(1, 0, 1, 20)  // leftmost column of sector (1,0)

	require.Equal(t, 1, hexgrid.Distance(a, b))
}

func TestDistance_SelfIsZero(t *testing.T) {
	a := hexgrid.NewCoords(2, -1, 15, 22)
	require.Equal(t, 0, hexgrid.Distance(a, a))
}

func TestCompare_TotalOrder(t *testing.T) {
	a := hexgrid.Coords{X: 1, Y: 2.5}
	b := hexgrid.Coords{X: 1, Y: 3.0}
	c := hexgrid.Coords{X: 2, Y: 0.0}

	require.Negative(t, a.Compare(b))
	require.Positive(t, b.Compare(a))
	require.Zero(t, a.Compare(a))
	require.Negative(t, b.Compare(c))
}

func TestParseHexLabel_BadInput(t *testing.T) {
	_, _, err := hexgrid.ParseHexLabel("31")
	require.ErrorIs(t, err, hexgrid.ErrBadHexLabel)

	_, _, err = hexgrid.ParseHexLabel("3AYY")
	require.ErrorIs(t, err, hexgrid.ErrBadHexLabel)
}

func TestInBox(t *testing.T) {
	origin := hexgrid.NewCoords(0, 0, 16, 20)
	near := hexgrid.NewCoords(0, 0, 17, 20)
	far := hexgrid.NewCoords(0, 0, 30, 20)

	require.True(t, hexgrid.InBox(origin, near, 2))
	require.False(t, hexgrid.InBox(origin, far, 2))
}
