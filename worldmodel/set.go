package worldmodel

import "github.com/hexroute/astrotrade/hexgrid"

// Set is the frozen, densely-indexed view of a world catalogue produced
// by Builder.Freeze. Its Coords order is the canonical index order every
// other pipeline stage (topology, apsp, tradeflow) relies on.
type Set struct {
	coords   []hexgrid.Coords
	byCoords map[hexgrid.Coords]*World
	byIndex  []*World
}

// Len returns N, the number of worlds (and the dimension every APSP
// matrix built from this Set will have).
func (s *Set) Len() int {
	return len(s.byIndex)
}

// At returns the World with the given dense index. Panics if index is
// out of [0, Len()) — any caller holding a valid index derived from this
// same Set cannot trigger that, so an out-of-range index here indicates
// an internal invariant breach (spec.md §7), not a data error.
func (s *Set) At(index int) *World {
	if index < 0 || index >= len(s.byIndex) {
		panic(&InvariantError{Op: "Set.At", Detail: "index out of range"})
	}
	return s.byIndex[index]
}

// ByCoords looks up a World by its absolute Coords.
func (s *Set) ByCoords(c hexgrid.Coords) (*World, bool) {
	w, ok := s.byCoords[c]
	return w, ok
}

// Coords returns the canonical sorted Coords vector. The returned slice
// must not be mutated by callers.
func (s *Set) Coords() []hexgrid.Coords {
	return s.coords
}

// All returns every World in index order. The returned slice must not be
// mutated by callers.
func (s *Set) All() []*World {
	return s.byIndex
}
