// Package worldmodel defines World, the unit of the trade-route graph,
// and the pure attribute derivations (UWTN, WTN, can-refuel) the rest of
// the engine depends on.
//
// A World moves through two lifecycle stages (spec.md §3, §9):
//
//  1. Builder stage: a *Builder accumulates Worlds keyed by their
//     hexgrid.Coords, permitting mutation (adding courier-route links,
//     correcting a misparsed field). Nothing about ordering or indices is
//     settled yet.
//  2. Frozen stage: Builder.Freeze sorts all Coords and produces a *Set
//     whose worlds carry a dense Index matching their position in that
//     sorted order. Callers are expected to treat a Set's World profile
//     fields as read-only from this point on; the only fields a Set's
//     Worlds are still expected to mutate are the neighbour-index sets
//     (filled once, immediately after Freeze, before APSP) and the
//     route-tier sets and trade-credit accumulators (filled by the
//     trade aggregator, after APSP).
//
// This mirrors the teacher's own separation of a mutable core.Graph from
// the read-only adjacency/matrix views handed to algorithms.
package worldmodel
