package apsp

import (
	"container/heap"
	"context"

	"github.com/hexroute/astrotrade/internal/worker"
	"github.com/hexroute/astrotrade/topology"
)

// runDijkstra fills one row of res for every source vertex, dispatched in
// parallel via internal/worker. Each goroutine owns its source's row
// exclusively, so no locking is needed around res.Dist/res.Pred.
//
// The inner loop is grounded on the teacher's dijkstra.runner: the same
// lazy-decrease-key strategy (push a new heap entry on every improvement,
// skip stale pops via a visited flag) adapted from string vertex IDs and
// map-based dist/prev to int32 CSR indices and flat Result rows.
func runDijkstra(ctx context.Context, g *topology.Graph, res *Result, concurrency int) error {
	n := g.N

	return worker.Run(ctx, n, concurrency, func(src int) error {
		row := src * n
		dist := res.Dist[row : row+n]
		pred := res.Pred[row : row+n]
		dist[src] = 0

		visited := make([]bool, n)
		pq := make(nodePQ, 0, n)
		heap.Push(&pq, &nodeItem{v: int32(src), dist: 0})

		for pq.Len() > 0 {
			item := heap.Pop(&pq).(*nodeItem)
			u := item.v
			if visited[u] {
				continue
			}
			visited[u] = true

			cols, weights := g.Neighbors(int(u))
			for idx, v := range cols {
				w := int32(weights[idx])
				newDist := dist[u] + w
				if newDist >= dist[v] {
					continue
				}
				dist[v] = newDist
				pred[v] = u
				heap.Push(&pq, &nodeItem{v: v, dist: newDist})
			}
		}

		return nil
	})
}

// nodeItem is a (vertex, tentative distance) pair held in the heap.
type nodeItem struct {
	v    int32
	dist int32
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// same lazy-decrease-key discipline as the teacher's dijkstra.nodePQ:
// stale entries are left in place and discarded on pop via the caller's
// visited slice rather than removed eagerly.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
