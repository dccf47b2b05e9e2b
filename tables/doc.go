// Package tables holds the two lookup tables spec.md §6 calls out by
// name: the bit-exact distance-modifier step function, and the
// externally-supplied DBTN_TO_CREDITS magnitude table.
//
// The distance modifier is fixed at the source level because spec.md
// gives its breakpoints bit-exact; DBTN_TO_CREDITS is "an externally
// supplied array of ascending values" and is therefore YAML-loadable,
// following the teacher pack's config.LoadLoginServer pattern
// (github.com/udisondev-la2go/internal/config) of "load from file, fall
// back to sensible defaults if absent".
package tables
