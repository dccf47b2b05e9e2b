// Package worker provides a bounded, per-index parallel dispatcher built
// on golang.org/x/sync/errgroup. It is the "one logical task per source
// vertex... scheduled across worker threads" fan-out spec.md §5 asks for,
// generalising the teacher's own use of sync primitives (core.Graph's
// muVert/muEdgeAdj locks) from "protect shared mutable state" to "bound
// concurrent fan-out over read-only inputs".
package worker
