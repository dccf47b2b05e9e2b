package worldmodel

import (
	"fmt"
	"sort"

	"github.com/hexroute/astrotrade/hexgrid"
)

// Builder accumulates Worlds during the parse phase. It permits
// mutation; once the full catalogue (plus courier routes) has been
// loaded, Freeze produces an immutable, densely-indexed Set.
type Builder struct {
	worlds map[hexgrid.Coords]*World
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{worlds: make(map[hexgrid.Coords]*World)}
}

// AddWorld registers a new World at coords. Returns ErrEmptyName if name
// is empty, or ErrDuplicateCoords if a world already occupies coords —
// per spec.md §7 this is a data error the parser-level caller should log
// and skip, not a fatal condition here.
func (b *Builder) AddWorld(name string, coords hexgrid.Coords) (*World, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, exists := b.worlds[coords]; exists {
		return nil, fmt.Errorf("worldmodel: coords %s: %w", coords, ErrDuplicateCoords)
	}
	w := newWorld(name, coords)
	b.worlds[coords] = w

	return w, nil
}

// Lookup returns the World at coords, if any.
func (b *Builder) Lookup(coords hexgrid.Coords) (*World, bool) {
	w, ok := b.worlds[coords]
	return w, ok
}

// Len reports the number of worlds currently registered.
func (b *Builder) Len() int {
	return len(b.worlds)
}

// LinkCourierRoute records a symmetric courier-route link between the
// worlds at a and b (spec.md §3: "Courier-route links are symmetric").
// Enforcing symmetry here, at construction time, is the design note of
// spec.md §9 ("must be enforced at construction time, not assumed from
// input"). Returns false, with no mutation, if either endpoint is
// missing (spec.md §7: "cross-sector reference missing... log and skip").
func (b *Builder) LinkCourierRoute(a, bb hexgrid.Coords) bool {
	wa, ok := b.worlds[a]
	if !ok {
		return false
	}
	wb, ok := b.worlds[bb]
	if !ok {
		return false
	}
	wa.CourierLinks[bb] = struct{}{}
	wb.CourierLinks[a] = struct{}{}

	return true
}

// Freeze sorts the registered Coords, assigns each World its dense Index
// (spec.md §3: "a unique dense index in [0, N) matching its position in
// the sorted-coords vector"), and returns the resulting Set. Freeze does
// not populate neighbour sets or route tiers — those belong to later
// pipeline stages (topology and tradeflow respectively).
func (b *Builder) Freeze() *Set {
	coords := make([]hexgrid.Coords, 0, len(b.worlds))
	for c := range b.worlds {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Compare(coords[j]) < 0
	})

	byIndex := make([]*World, len(coords))
	for i, c := range coords {
		w := b.worlds[c]
		w.Index = i
		byIndex[i] = w
	}

	return &Set{
		coords:   coords,
		byCoords: b.worlds,
		byIndex:  byIndex,
	}
}
