// Package astrotrade is the root of a trade-route analysis engine for a
// fictional astrographic setting: worlds on a tiled hex grid of sectors,
// jump-constrained shortest paths between them, and the economic trade
// flow those paths carry.
//
// The pipeline package orchestrates the full run (reachability -> APSP
// -> aggregation); the other packages are the reusable CORE it wires
// together: hexgrid, worldmodel, topology, apsp, tradeflow, tables.
package astrotrade
