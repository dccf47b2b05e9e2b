package tradeflow

import (
	"github.com/hexroute/astrotrade/apsp"
	"github.com/hexroute/astrotrade/tables"
	"github.com/hexroute/astrotrade/worldmodel"
)

// capBonus is the margin added to min(WTN(a), WTN(b)) when capping BTN
// (spec.md §4.5: "capped at min(WTN(a), WTN(b)) + cap_bonus"). spec.md
// does not fix this constant's value; this is a documented choice,
// recorded in DESIGN.md, not a transcription of an external table.
const capBonus = 5.0

// BTN computes the bilateral trade number between a and b at a given
// finite hex distance (spec.md §4.5):
//
//	BTN = WTN(a) + WTN(b) + ClassificationBonus(a,b) - DistanceModifier(dist)
//
// capped at min(WTN(a), WTN(b)) + capBonus.
func BTN(a, b *worldmodel.World, dist int32) float64 {
	wtnA, wtnB := a.WTN(), b.WTN()
	raw := wtnA + wtnB + worldmodel.ClassificationBonus(a, b) - tables.DistanceModifier(dist)

	cap := wtnA
	if wtnB < cap {
		cap = wtnB
	}
	cap += capBonus

	if raw > cap {
		return cap
	}
	return raw
}

// Unreachable reports whether dist is the apsp.Infinity sentinel
// (spec.md §4.5: "if finite, else 'unreachable' (the pair contributes
// nothing)").
func Unreachable(dist int32) bool {
	return dist >= apsp.Infinity
}
