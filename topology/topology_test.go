package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexroute/astrotrade/hexgrid"
	"github.com/hexroute/astrotrade/topology"
	"github.com/hexroute/astrotrade/worldmodel"
)

// buildLine builds n worlds in a straight line two hexes apart along the
// same row, every one a class-A starport (refuellable).
func buildLine(t *testing.T, n int) *worldmodel.Set {
	t.Helper()
	b := worldmodel.NewBuilder()
	for i := 0; i < n; i++ {
		c := hexgrid.NewCoords(0, 0, 1+2*i, 10)
		w, err := b.AddWorld(string(rune('A'+i)), c)
		require.NoError(t, err)
		w.Profile.Starport = worldmodel.StarportA
	}
	return b.Freeze()
}

func TestBuildNeighbors_RespectsCanRefuel(t *testing.T) {
	b := worldmodel.NewBuilder()
	ca := hexgrid.NewCoords(0, 0, 1, 10)
	cb := hexgrid.NewCoords(0, 0, 2, 10)
	wa, _ := b.AddWorld("A", ca)
	wa.Profile.Starport = worldmodel.StarportA
	wb, _ := b.AddWorld("B", cb)
	wb.Profile.Starport = worldmodel.StarportX // cannot refuel, no gas giants, no hydrosphere
	set := b.Freeze()

	require.NoError(t, topology.BuildNeighbors(set))

	a := set.At(wa.Index)
	_, adjacent := a.Neighbors[1][cb]
	require.False(t, adjacent, "B cannot refuel, so A must not list it as a jump-1 neighbour")
}

func TestBuildGraph_CourierRouteBeatsLongJump(t *testing.T) {
	set := buildLine(t, 2)
	coords := set.Coords()
	require.NoError(t, topology.BuildNeighbors(set))

	b := worldmodel.NewBuilder()
	_ = b // builder already frozen above; courier links must be set before Freeze in real use.

	// Manually wire a courier link after the fact for this synthetic test:
	// both worlds are within jump-2 already (distance 2 apart on this line),
	// so relying purely on neighbours would give weight 2; add a courier
	// shortcut and confirm the minimum wins.
	wa, _ := set.ByCoords(coords[0])
	wbWorld, _ := set.ByCoords(coords[1])
	wa.CourierLinks[wbWorld.Coords] = struct{}{}
	wbWorld.CourierLinks[wa.Coords] = struct{}{}

	g, err := topology.BuildGraph(set, 2)
	require.NoError(t, err)

	cols, weights := g.Neighbors(wa.Index)
	require.Contains(t, cols, int32(wbWorld.Index))
	for i, c := range cols {
		if c == int32(wbWorld.Index) {
			require.Equal(t, int16(1), weights[i])
		}
	}
}

func TestBuildGraph_Symmetric(t *testing.T) {
	set := buildLine(t, 4)
	require.NoError(t, topology.BuildNeighbors(set))
	g, err := topology.BuildGraph(set, 2)
	require.NoError(t, err)

	for i := 0; i < g.N; i++ {
		cols, weights := g.Neighbors(i)
		for j, c := range cols {
			w := weights[j]
			rcols, rweights := g.Neighbors(int(c))
			found := false
			for k, rc := range rcols {
				if int(rc) == i {
					require.Equal(t, w, rweights[k])
					found = true
				}
			}
			require.True(t, found, "edge %d->%d has no reverse entry", i, c)
		}
	}
}

func TestBuildGraph_BadRadius(t *testing.T) {
	set := buildLine(t, 2)
	_, err := topology.BuildGraph(set, 9)
	require.ErrorIs(t, err, topology.ErrBadRadius)
}
