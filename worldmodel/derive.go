// derive.go implements the pure economic derivations of spec.md §4.2.
// Every function here is a pure function of World attributes: none of
// them mutate the receiver, matching the spec's explicit requirement
// ("These are pure functions; they must not mutate the world.").
package worldmodel

// popWTNModifier is the population-digit contribution to UWTN. The exact
// canonical table is not fixed by spec.md (only the distance-modifier and
// DBTN_TO_CREDITS tables are specified bit-exact, in §6); this
// implementation picks the simplest monotonic rule consistent with the
// spec's description ("population modifier, per a fixed lookup by
// population digit") — half the population digit's base-34 value. The
// decision is recorded, with rationale, in DESIGN.md.
func popWTNModifier(populationDigit int) float64 {
	return float64(populationDigit) / 2.0
}

// UWTN computes the underlying World Trade Number (spec.md §4.2):
//
//	UWTN = ½·tech_level + population modifier
func (w *World) UWTN() float64 {
	return float64(w.Profile.TechLevel)/2.0 + popWTNModifier(w.Profile.Population)
}

// portModifierBase is the starport-class contribution to WTN before
// bracket adjustment. As with popWTNModifier, spec.md does not fix this
// table bit-exact; the relative ordering (better starport -> larger
// positive modifier) is the load-bearing part and is preserved here.
var portModifierBase = map[Starport]float64{
	StarportA: 0.5,
	StarportB: 0.25,
	StarportC: 0.0,
	StarportD: -0.25,
	StarportE: -0.5,
	StarportX: -1.0,
}

// PortModifier looks up the starport/UWTN-bracket table of spec.md §4.2.
// Starport quality matters more for a world whose UWTN would otherwise be
// weak, and saturates towards zero for an already-strong world; brackets
// below 2.0 double the base modifier, brackets at or above 10.0 halve it.
func PortModifier(starport Starport, uwtn float64) float64 {
	base, ok := portModifierBase[starport]
	if !ok {
		base = portModifierBase[StarportX]
	}
	switch {
	case uwtn < 2.0:
		return base * 2
	case uwtn >= 10.0:
		return base * 0.5
	default:
		return base
	}
}

// WTN computes the final World Trade Number (spec.md §4.2): UWTN plus
// the starport/bracket port modifier.
func (w *World) WTN() float64 {
	uwtn := w.UWTN()
	return uwtn + PortModifier(w.Profile.Starport, uwtn)
}

// complementaryPairBonus lists unordered pairs of trade classifications
// that earn a bonus term in BTN (spec.md §4.5: "two small bonuses for
// complementary trade classifications, e.g. agricultural paired with
// rich"). Keys are canonicalised (lexicographically smaller tag first)
// by ClassificationBonus.
var complementaryPairBonus = map[[2]string]float64{
	{"Ag", "Ri"}: 0.5,
	{"Ag", "Na"}: 0.5,
	{"In", "Ni"}: 0.5,
	{"Ri", "Po"}: 0.5,
}

// ClassificationBonus sums the complementary-pair bonus terms for a pair
// of worlds' trade classifications (spec.md §4.5). Order of a, b does not
// matter: the result is symmetric.
func ClassificationBonus(a, b *World) float64 {
	var total float64
	for pair, bonus := range complementaryPairBonus {
		x, y := pair[0], pair[1]
		if (a.HasTradeClassification(x) && b.HasTradeClassification(y)) ||
			(a.HasTradeClassification(y) && b.HasTradeClassification(x)) {
			total += bonus
		}
	}
	return total
}
