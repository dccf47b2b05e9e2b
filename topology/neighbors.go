package topology

import (
	"fmt"

	"github.com/hexroute/astrotrade/hexgrid"
	"github.com/hexroute/astrotrade/worldmodel"
)

// BuildNeighbors fills, for every world in set, the three neighbour sets
// Neighbors[1], Neighbors[2], Neighbors[3]: the refuellable worlds within
// straight-line distance k (spec.md §4.3). Must be called exactly once,
// after Builder.Freeze and before any courier-route-aware graph is built.
//
// The search is bounded to a radius-3 box in absolute coordinates (the
// widest radius any caller needs), then filtered by exact hexgrid.Distance
// and CanRefuel, matching the "iterate only worlds whose coords lie in
// that box" guidance of spec.md §4.3.
func BuildNeighbors(set *worldmodel.Set) error {
	if set == nil {
		return ErrNilSet
	}

	coords := set.Coords()
	for _, uc := range coords {
		u, _ := set.ByCoords(uc)
		for _, vc := range coords {
			if vc == uc {
				continue
			}
			if !hexgrid.InBox(uc, vc, 3) {
				continue
			}
			v, ok := set.ByCoords(vc)
			if !ok || !v.CanRefuel() {
				continue
			}
			d := hexgrid.Distance(uc, vc)
			for k := d; k <= 3; k++ {
				u.Neighbors[k][vc] = struct{}{}
			}
		}
	}

	return nil
}

// NeighborsAtRadius returns the jump-k neighbour set for world index idx,
// k in {1,2,3}. It is a thin, validated wrapper over World.Neighbors used
// by callers that only carry indices, not *World pointers.
func NeighborsAtRadius(set *worldmodel.Set, idx, k int) (map[hexgrid.Coords]struct{}, error) {
	if k < 1 || k > 3 {
		return nil, fmt.Errorf("topology: radius %d: %w", k, ErrBadRadius)
	}
	return set.At(idx).Neighbors[k], nil
}
