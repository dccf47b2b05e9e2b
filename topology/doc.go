// Package topology derives the graph the APSP engine runs over: the
// jump-k neighbour index (spec.md §4.3) and the CSR weighted adjacency
// assembled from neighbour edges and courier-route shortcuts (spec.md
// §3, "Weighted graph").
//
// Following the teacher's matrix package ("better represented as
// compressed sparse row than per-vertex hash maps: APSP inner loops
// iterate neighbours hot", spec.md §9), the adjacency produced here is a
// flat CSR structure rather than a map of maps.
package topology
