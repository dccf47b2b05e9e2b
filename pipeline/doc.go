// Package pipeline orchestrates the strictly-phased core of spec.md §5:
// build neighbour index -> build weighted graphs at k=2 and k=3 -> run
// APSP on each -> aggregate trade flow. Each phase completes before the
// next begins; there are no suspension points within a Run (the core is
// CPU-bound).
//
// This is the only layer that logs (via the standard log package,
// matching the teacher's cmd/gameserver entrypoint) and the only layer
// that stamps a correlation id (github.com/google/uuid) onto a run, for
// operators correlating one Run's log lines.
package pipeline
