package worldmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexroute/astrotrade/hexgrid"
	"github.com/hexroute/astrotrade/worldmodel"
)

func TestDecodeDigit_RoundTrip(t *testing.T) {
	for v := 0; v < 34; v++ {
		b := worldmodel.EncodeDigit(v)
		got, err := worldmodel.DecodeDigit(b)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestDecodeDigit_SkipsIAndO(t *testing.T) {
	_, err := worldmodel.DecodeDigit('I')
	require.ErrorIs(t, err, worldmodel.ErrBadDigit)
	_, err = worldmodel.DecodeDigit('O')
	require.ErrorIs(t, err, worldmodel.ErrBadDigit)
}

func TestBuilder_FreezeAssignsDenseIndex(t *testing.T) {
	b := worldmodel.NewBuilder()
	c1 := hexgrid.NewCoords(0, 0, 10, 10)
	c2 := hexgrid.NewCoords(0, 0, 5, 5)
	c3 := hexgrid.NewCoords(0, 0, 20, 20)

	_, err := b.AddWorld("Alpha", c1)
	require.NoError(t, err)
	_, err = b.AddWorld("Beta", c2)
	require.NoError(t, err)
	_, err = b.AddWorld("Gamma", c3)
	require.NoError(t, err)

	set := b.Freeze()
	require.Equal(t, 3, set.Len())

	// Coords are sorted, so Beta (c2, smaller X) gets index 0.
	require.Equal(t, "Beta", set.At(0).Name)
	require.Equal(t, "Alpha", set.At(1).Name)
	require.Equal(t, "Gamma", set.At(2).Name)

	for i, w := range set.All() {
		require.Equal(t, i, w.Index)
	}
}

func TestBuilder_DuplicateCoordsRejected(t *testing.T) {
	b := worldmodel.NewBuilder()
	c := hexgrid.NewCoords(0, 0, 1, 1)
	_, err := b.AddWorld("First", c)
	require.NoError(t, err)
	_, err = b.AddWorld("Second", c)
	require.ErrorIs(t, err, worldmodel.ErrDuplicateCoords)
}

func TestBuilder_CourierRouteSymmetric(t *testing.T) {
	b := worldmodel.NewBuilder()
	ca := hexgrid.NewCoords(0, 0, 1, 1)
	cb := hexgrid.NewCoords(0, 0, 2, 2)
	wa, _ := b.AddWorld("A", ca)
	wb, _ := b.AddWorld("B", cb)

	ok := b.LinkCourierRoute(ca, cb)
	require.True(t, ok)

	_, hasAB := wa.CourierLinks[cb]
	_, hasBA := wb.CourierLinks[ca]
	require.True(t, hasAB)
	require.True(t, hasBA)
}

func TestBuilder_CourierRouteMissingEndpointSkipped(t *testing.T) {
	b := worldmodel.NewBuilder()
	ca := hexgrid.NewCoords(0, 0, 1, 1)
	_, _ = b.AddWorld("A", ca)
	missing := hexgrid.NewCoords(9, 9, 9, 9)

	ok := b.LinkCourierRoute(ca, missing)
	require.False(t, ok)
}

func TestCanRefuel(t *testing.T) {
	cases := []struct {
		name     string
		profile  worldmodel.Profile
		expected bool
	}{
		{"GoodStarport", worldmodel.Profile{Starport: worldmodel.StarportB, Zone: worldmodel.ZoneRed}, true},
		{"GasGiant", worldmodel.Profile{Starport: worldmodel.StarportX, GasGiants: 2, Zone: worldmodel.ZoneRed}, true},
		{"WetAndSafe", worldmodel.Profile{Starport: worldmodel.StarportX, Hydrosphere: 3, Zone: worldmodel.ZoneGreen}, true},
		{"WetButRed", worldmodel.Profile{Starport: worldmodel.StarportX, Hydrosphere: 3, Zone: worldmodel.ZoneRed}, false},
		{"Nothing", worldmodel.Profile{Starport: worldmodel.StarportE, Zone: worldmodel.ZoneAmber}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := &worldmodel.World{Profile: tc.profile}
			require.Equal(t, tc.expected, w.CanRefuel())
		})
	}
}

func TestUWTNAndWTN(t *testing.T) {
	w := &worldmodel.World{Profile: worldmodel.Profile{
		Starport:   worldmodel.StarportA,
		TechLevel:  12,
		Population: 6,
	}}
	// UWTN = 12/2 + 6/2 = 6 + 3 = 9.
	require.InDelta(t, 9.0, w.UWTN(), 1e-9)
	// Bracket [2,10) -> base modifier unchanged: 0.5.
	require.InDelta(t, 9.5, w.WTN(), 1e-9)
}

func TestWTN_LowUWTNBracketDoublesPortModifier(t *testing.T) {
	w := &worldmodel.World{Profile: worldmodel.Profile{
		Starport:   worldmodel.StarportA,
		TechLevel:  2,
		Population: 0,
	}}
	// UWTN = 1.0 < 2.0 bracket -> port modifier doubled: 0.5*2 = 1.0.
	require.InDelta(t, 1.0, w.UWTN(), 1e-9)
	require.InDelta(t, 2.0, w.WTN(), 1e-9)
}

func TestClassificationBonus(t *testing.T) {
	a := &worldmodel.World{TradeClassifications: map[string]struct{}{"Ag": {}}}
	b := &worldmodel.World{TradeClassifications: map[string]struct{}{"Ri": {}}}
	require.InDelta(t, 0.5, worldmodel.ClassificationBonus(a, b), 1e-9)
	require.InDelta(t, 0.5, worldmodel.ClassificationBonus(b, a), 1e-9)

	c := &worldmodel.World{TradeClassifications: map[string]struct{}{"In": {}}}
	require.Zero(t, worldmodel.ClassificationBonus(a, c))
}

func TestPromoteTier_NoDemotion(t *testing.T) {
	w := newTestWorld()
	other := hexgrid.NewCoords(0, 0, 5, 5)

	w.PromoteTier(other, worldmodel.TierMain)
	_, atMain := w.RouteTiers[worldmodel.TierMain][other]
	require.True(t, atMain)

	// Attempting to demote to Feeder must be a no-op.
	w.PromoteTier(other, worldmodel.TierFeeder)
	_, stillAtMain := w.RouteTiers[worldmodel.TierMain][other]
	_, atFeeder := w.RouteTiers[worldmodel.TierFeeder][other]
	require.True(t, stillAtMain)
	require.False(t, atFeeder)

	// Promoting to Major must succeed and clear the lower entry.
	w.PromoteTier(other, worldmodel.TierMajor)
	_, atMajor := w.RouteTiers[worldmodel.TierMajor][other]
	_, atMainAfter := w.RouteTiers[worldmodel.TierMain][other]
	require.True(t, atMajor)
	require.False(t, atMainAfter)
}

func newTestWorld() *worldmodel.World {
	b := worldmodel.NewBuilder()
	w, _ := b.AddWorld("Test", hexgrid.NewCoords(0, 0, 1, 1))
	return w
}
