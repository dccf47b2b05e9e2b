package apsp

import (
	"context"

	"github.com/hexroute/astrotrade/internal/worker"
	"github.com/hexroute/astrotrade/topology"
)

// runDial fills one row of res per source vertex using a bucket queue
// ("Dial's algorithm"), dispatched in parallel via internal/worker.
//
// Grounded on original_source/src/apsp.rs's dial_one_row: same
// lazy-decrease-key discipline as Dijkstra (a stale pop is detected by
// comparing the popped priority against the vertex's current best
// distance), but the priority queue is a ring of FIFO buckets sized
// maxWeight+1 instead of a binary heap, since every edge weight in this
// graph is a small bounded integer (spec.md §3: jump weights 1-4).
func runDial(ctx context.Context, g *topology.Graph, res *Result, concurrency int, maxWeight int16) error {
	n := g.N
	numBuckets := int(maxWeight) + 1
	if numBuckets < 1 {
		numBuckets = 1
	}

	return worker.Run(ctx, n, concurrency, func(src int) error {
		row := src * n
		dist := res.Dist[row : row+n]
		pred := res.Pred[row : row+n]
		dist[src] = 0

		q := newDialQueue(numBuckets)
		q.push(0, int32(src))

		for q.remaining > 0 {
			u, priority, ok := q.pop()
			if !ok {
				continue
			}
			// Stale entry: u was re-enqueued at a better distance since
			// this one was pushed.
			if priority != dist[u] {
				continue
			}

			cols, weights := g.Neighbors(int(u))
			for idx, v := range cols {
				w := int32(weights[idx])
				newDist := dist[u] + w
				if newDist >= dist[v] {
					continue
				}
				dist[v] = newDist
				pred[v] = u
				q.push(newDist, v)
			}
		}

		return nil
	})
}

// dialQueue is a ring of FIFO buckets indexed by (distance mod
// numBuckets), the classic memory-bounded priority queue for graphs
// whose edge weights are small bounded integers. remaining counts
// pushes not yet popped (stale or not), giving an O(1) empty check
// without scanning every bucket.
type dialQueue struct {
	buckets    [][]int32
	priorities [][]int32
	numBuckets int
	cur        int
	remaining  int
}

func newDialQueue(numBuckets int) *dialQueue {
	return &dialQueue{
		buckets:    make([][]int32, numBuckets),
		priorities: make([][]int32, numBuckets),
		numBuckets: numBuckets,
	}
}

func (q *dialQueue) push(dist int32, v int32) {
	idx := int(dist) % q.numBuckets
	q.buckets[idx] = append(q.buckets[idx], v)
	q.priorities[idx] = append(q.priorities[idx], dist)
	q.remaining++
}

// pop advances the ring to the next non-empty bucket and returns its
// front entry. ok is false only when called with remaining == 0, which
// runDial's loop guards against.
func (q *dialQueue) pop() (v int32, priority int32, ok bool) {
	if q.remaining == 0 {
		return 0, 0, false
	}
	for {
		b := q.buckets[q.cur]
		if len(b) == 0 {
			q.cur = (q.cur + 1) % q.numBuckets
			continue
		}

		v = b[0]
		priority = q.priorities[q.cur][0]
		q.buckets[q.cur] = b[1:]
		q.priorities[q.cur] = q.priorities[q.cur][1:]
		q.remaining--

		return v, priority, true
	}
}
