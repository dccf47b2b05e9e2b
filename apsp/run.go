package apsp

import (
	"context"
	"fmt"

	"github.com/hexroute/astrotrade/topology"
)

// Run computes all-pairs shortest distances and predecessors over g using
// the requested backend (spec.md §4.4, §9). The returned Result's Dist
// matrix is identical across all three backends for the same graph;
// its Pred matrix is only guaranteed internally consistent (spec.md
// §4.4's "a valid predecessor, not necessarily the same one picked by a
// different backend").
func Run(ctx context.Context, g *topology.Graph, backend Backend, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.N >= int(NoPred) {
		return nil, ErrTooManyVertices
	}

	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	res := newResult(g.N)
	for i := 0; i < g.N; i++ {
		res.Dist[i*g.N+i] = 0
	}

	switch backend {
	case BackendDijkstra:
		if err := runDijkstra(ctx, g, res, cfg.Concurrency); err != nil {
			return nil, fmt.Errorf("apsp: dijkstra: %w", err)
		}
	case BackendDial:
		if err := runDial(ctx, g, res, cfg.Concurrency, maxEdgeWeight(g)); err != nil {
			return nil, fmt.Errorf("apsp: dial: %w", err)
		}
	case BackendFloyd:
		runFloyd(g, res)
	default:
		return nil, fmt.Errorf("apsp: backend %v: %w", backend, ErrUnknownBackend)
	}

	return res, nil
}

// maxEdgeWeight scans the graph's CSR weight array once to size the Dial
// bucket queue (spec.md's bound C on distinct edge weights).
func maxEdgeWeight(g *topology.Graph) int16 {
	var max int16
	for _, w := range g.Weights {
		if w > max {
			max = w
		}
	}

	return max
}
