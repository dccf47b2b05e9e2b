package worldmodel

import (
	"github.com/hexroute/astrotrade/hexgrid"
)

// Zone is a world's travel-hazard marker.
type Zone byte

// Zone markers, in increasing order of hazard.
const (
	ZoneGreen Zone = 'G'
	ZoneAmber Zone = 'A'
	ZoneRed   Zone = 'R'
)

// Starport is a world's starport class.
type Starport byte

// Starport classes, in decreasing order of quality. StarportX marks "no
// starport" (some catalogues encode it as 'X' in the class column).
const (
	StarportA Starport = 'A'
	StarportB Starport = 'B'
	StarportC Starport = 'C'
	StarportD Starport = 'D'
	StarportE Starport = 'E'
	StarportX Starport = 'X'
)

// RouteTier is one of the five discrete trade-flow bands a pair of
// adjacent worlds on a computed route can be credited with (spec.md §4.6).
type RouteTier int

// Route tiers, lowest (least significant) first, so a larger value is a
// higher tier. The zero value, TierNone, means "no tier assigned".
const (
	TierNone RouteTier = iota
	TierMinor
	TierFeeder
	TierIntermediate
	TierMain
	TierMajor
)

// String renders a RouteTier for logs and test failure messages.
func (t RouteTier) String() string {
	switch t {
	case TierMajor:
		return "major"
	case TierMain:
		return "main"
	case TierIntermediate:
		return "intermediate"
	case TierFeeder:
		return "feeder"
	case TierMinor:
		return "minor"
	default:
		return "none"
	}
}

// Profile holds the seven single-digit UWP attributes plus gas-giant
// count, starport, and zone — everything spec.md §3 calls "profile".
type Profile struct {
	Starport     Starport
	Size         int
	Atmosphere   int
	Hydrosphere  int
	Population   int
	Government   int
	Law          int
	TechLevel    int
	GasGiants    int
	Zone         Zone
}

// World is the unit of the trade-route graph (spec.md §3).
//
// Fields are grouped identity / profile / economic / links, matching the
// spec's own grouping. Index is -1 until a Builder freezes the world set;
// after that it is the World's position in the sorted-Coords vector and
// must not change.
type World struct {
	// Identity.
	Name          string
	SectorName    string
	SectorLoc     [2]int
	HexLabel      string
	Coords        hexgrid.Coords
	Index         int

	// Profile.
	Profile Profile

	// Economic.
	Importance              int
	TradeClassifications    map[string]struct{}
	EndpointTradeCredits    float64
	TransientTradeCredits   float64

	// Links.
	CourierLinks map[hexgrid.Coords]struct{}
	Neighbors    [4]map[hexgrid.Coords]struct{} // index by jump radius k (1,2,3); index 0 unused
	RouteTiers   [6]map[hexgrid.Coords]struct{} // index by RouteTier; TierNone unused
}

// newWorld allocates a World with every set-valued field initialised, so
// callers never need a nil check before a map write.
func newWorld(name string, coords hexgrid.Coords) *World {
	w := &World{
		Name:                 name,
		Coords:               coords,
		Index:                -1,
		TradeClassifications: make(map[string]struct{}),
		CourierLinks:         make(map[hexgrid.Coords]struct{}),
	}
	for k := 1; k <= 3; k++ {
		w.Neighbors[k] = make(map[hexgrid.Coords]struct{})
	}
	for t := TierMinor; t <= TierMajor; t++ {
		w.RouteTiers[t] = make(map[hexgrid.Coords]struct{})
	}
	return w
}

// HasTradeClassification reports whether tag is present among w's trade
// classifications (spec.md §3's "set of short tags").
func (w *World) HasTradeClassification(tag string) bool {
	_, ok := w.TradeClassifications[tag]
	return ok
}

// CanRefuel implements the fuel-availability predicate of spec.md §3:
//
//	can_refuel ⇔ (starport ∈ {A,B,C,D}) ∨ (gas_giants > 0) ∨
//	             (hydrosphere > 0 ∧ zone ≠ red)
//
// This is the formulation spec.md §9 flags as needing confirmation
// against the original rules reference before being relied on elsewhere;
// DESIGN.md records the decision to implement it exactly as written here.
func (w *World) CanRefuel() bool {
	switch w.Profile.Starport {
	case StarportA, StarportB, StarportC, StarportD:
		return true
	}
	if w.Profile.GasGiants > 0 {
		return true
	}
	return w.Profile.Hydrosphere > 0 && w.Profile.Zone != ZoneRed
}

// PromoteTier credits the adjacent world `other` to tier in w's route-tier
// sets, enforcing the "demotion forbidden" rule of spec.md §4.6: if
// `other` is already recorded at a tier strictly higher than the given
// tier, the existing (higher) membership is left untouched.
func (w *World) PromoteTier(other hexgrid.Coords, tier RouteTier) {
	if tier <= TierNone {
		return
	}
	for t := TierMajor; t > tier; t-- {
		if _, already := w.RouteTiers[t][other]; already {
			return
		}
	}
	for t := TierMinor; t < tier; t++ {
		delete(w.RouteTiers[t], other)
	}
	w.RouteTiers[tier][other] = struct{}{}
}
