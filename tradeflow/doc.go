// Package tradeflow implements the trade-economics layer of spec.md
// §4.5-§4.7: bilateral trade numbers, path reconstruction from an
// apsp.Result, and the route-tier aggregator that walks every reachable
// world pair and credits trade flow to the worlds and edges along its
// shortest path.
package tradeflow
