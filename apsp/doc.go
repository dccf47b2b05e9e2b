// Package apsp computes all-pairs shortest paths over a topology.Graph:
// for every source vertex, the minimum distance and a predecessor to
// every other vertex (spec.md §4.4).
//
// Three interchangeable back-ends are available, modelled as the closed
// tagged variant Backend rather than a string or polymorphic interface
// (spec.md §9's design note):
//
//   - BackendDijkstra: binary-heap Dijkstra per source, dispatched in
//     parallel across sources via internal/worker. The default choice for
//     general graphs.
//   - BackendDial: bucket-queue Dijkstra per source ("Dial's algorithm"),
//     also dispatched in parallel. Exploits the small bound on edge
//     weights (spec.md's {1,2,3,4}) for O(V.(E+V.C)) instead of
//     O(V.(E+V)log V).
//   - BackendFloyd: single-threaded Floyd-Warshall, O(V^3). Reference-only,
//     matching original_source/src/apsp.rs's own doc comment that it
//     "should not be used except for testing".
//
// All three must produce identical Dist matrices for the same graph;
// Pred matrices need only be internally consistent (spec.md §4.4).
package apsp
