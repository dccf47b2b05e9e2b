package topology

import (
	"fmt"
	"sort"

	"github.com/hexroute/astrotrade/hexgrid"
	"github.com/hexroute/astrotrade/worldmodel"
)

// Graph is a symmetric, small-integer-weighted adjacency in compressed
// sparse row form: the neighbours of vertex i are
// Cols[RowStart[i]:RowStart[i+1]], with parallel weights in
// Weights[RowStart[i]:RowStart[i+1]]. Both directions of every edge are
// materialised, so apsp's per-source loops never need to special-case
// direction.
type Graph struct {
	N        int
	RowStart []int32
	Cols     []int32
	Weights  []int16
}

// edgeKey is an unordered pair of dense indices, canonicalised lo <= hi,
// used to dedupe candidate edges before the CSR is assembled.
type edgeKey struct{ lo, hi int32 }

// BuildGraph assembles the weighted adjacency for jump radius k
// (spec.md §3, "Weighted graph"): an edge (u,v) exists when v is in u's
// jump-k neighbour set (weight = straight-line distance) or (u,v) is a
// courier-route pair (weight = 1); the smaller weight wins when both
// apply, and the result is symmetrised before being handed to apsp.
func BuildGraph(set *worldmodel.Set, k int) (*Graph, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	if k < 1 || k > 3 {
		return nil, fmt.Errorf("topology: radius %d: %w", k, ErrBadRadius)
	}

	n := set.Len()
	edges := make(map[edgeKey]int16)

	relax := func(ui, vi int32, w int16) {
		key := edgeKey{lo: ui, hi: vi}
		if key.lo > key.hi {
			key.lo, key.hi = key.hi, key.lo
		}
		if existing, ok := edges[key]; !ok || w < existing {
			edges[key] = w
		}
	}

	for ui := 0; ui < n; ui++ {
		u := set.At(ui)
		for vc := range u.Neighbors[k] {
			v, ok := set.ByCoords(vc)
			if !ok {
				continue
			}
			d := hexgrid.Distance(u.Coords, vc)
			relax(int32(ui), int32(v.Index), int16(d))
		}
		for vc := range u.CourierLinks {
			v, ok := set.ByCoords(vc)
			if !ok {
				continue
			}
			relax(int32(ui), int32(v.Index), 1)
		}
	}

	return fromEdgeMap(n, edges), nil
}

// fromEdgeMap materialises a deterministic CSR graph from a deduped
// unordered-edge map: both (lo,hi) and (hi,lo) are emitted, and each
// row's columns are sorted for reproducible iteration order.
func fromEdgeMap(n int, edges map[edgeKey]int16) *Graph {
	degree := make([]int32, n)
	for key := range edges {
		degree[key.lo]++
		degree[key.hi]++
	}

	rowStart := make([]int32, n+1)
	for i := 0; i < n; i++ {
		rowStart[i+1] = rowStart[i] + degree[i]
	}

	cols := make([]int32, rowStart[n])
	weights := make([]int16, rowStart[n])
	cursor := make([]int32, n)
	copy(cursor, rowStart[:n])

	place := func(from, to int32, w int16) {
		idx := cursor[from]
		cols[idx] = to
		weights[idx] = w
		cursor[from]++
	}
	for key, w := range edges {
		place(key.lo, key.hi, w)
		place(key.hi, key.lo, w)
	}

	g := &Graph{N: n, RowStart: rowStart, Cols: cols, Weights: weights}
	g.sortRows()

	return g
}

// sortRows orders each row's (Cols, Weights) pair by column index, so two
// graphs built from the same logical edge set always produce byte-for-byte
// identical CSR arrays regardless of map iteration order.
func (g *Graph) sortRows() {
	for i := 0; i < g.N; i++ {
		lo, hi := g.RowStart[i], g.RowStart[i+1]
		cols := g.Cols[lo:hi]
		weights := g.Weights[lo:hi]
		idx := make([]int, len(cols))
		for j := range idx {
			idx[j] = j
		}
		sort.Slice(idx, func(a, b int) bool { return cols[idx[a]] < cols[idx[b]] })

		sortedCols := make([]int32, len(cols))
		sortedWeights := make([]int16, len(weights))
		for j, orig := range idx {
			sortedCols[j] = cols[orig]
			sortedWeights[j] = weights[orig]
		}
		copy(cols, sortedCols)
		copy(weights, sortedWeights)
	}
}

// Neighbors returns vertex i's (columns, weights) slices. Callers must
// not mutate the returned slices.
func (g *Graph) Neighbors(i int) ([]int32, []int16) {
	lo, hi := g.RowStart[i], g.RowStart[i+1]
	return g.Cols[lo:hi], g.Weights[lo:hi]
}
