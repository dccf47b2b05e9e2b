// Package hexgrid implements coordinate algebra for the odd-q offset hex
// grid used to lay out sectors of star systems.
//
// A Coords value is an absolute position on the grid: the world's
// sector location composed with its in-sector hex label. Absolute
// coordinates make straight-line distance a pure function of two Coords
// values with no sector-boundary special-casing — crossing from one
// sector into its neighbour is just arithmetic on larger numbers.
//
// Distance is computed by converting the offset coordinates to cube
// coordinates (q, r, s) and taking (|Δq| + |Δr| + |Δs|) / 2, the standard
// axial-hex metric.
package hexgrid
