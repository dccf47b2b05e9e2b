package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/hexroute/astrotrade/apsp"
	"github.com/hexroute/astrotrade/tables"
	"github.com/hexroute/astrotrade/topology"
	"github.com/hexroute/astrotrade/tradeflow"
	"github.com/hexroute/astrotrade/worldmodel"
)

// Result is everything a Run produces: the frozen set itself (route
// tiers and trade credits are now populated on it), both graphs and
// APSP matrices computed along the way, and a RunID correlating this
// run's log lines.
type Result struct {
	RunID uuid.UUID
	Set   *worldmodel.Set
	Graph2, Graph3 *topology.Graph
	Dist2, Dist3   *apsp.Result
}

// Run drives the strictly-phased core of spec.md §5 end to end: build
// neighbour index -> build weighted graphs at k=2 and k=3 -> run APSP on
// each with the configured backend -> aggregate trade flow. Each phase
// completes before the next begins.
func Run(ctx context.Context, set *worldmodel.Set, opts ...Option) (*Result, error) {
	if set == nil {
		return nil, ErrNilSet
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := uuid.New()
	log.Printf("pipeline run %s starting: %d worlds, backend=%s", runID, set.Len(), cfg.Backend)

	if err := topology.BuildNeighbors(set); err != nil {
		return nil, fmt.Errorf("pipeline: run %s: building neighbour index: %w", runID, err)
	}
	log.Printf("pipeline run %s: neighbour index built", runID)

	graph2, err := topology.BuildGraph(set, 2)
	if err != nil {
		return nil, fmt.Errorf("pipeline: run %s: building k=2 graph: %w", runID, err)
	}
	graph3, err := topology.BuildGraph(set, 3)
	if err != nil {
		return nil, fmt.Errorf("pipeline: run %s: building k=3 graph: %w", runID, err)
	}
	log.Printf("pipeline run %s: weighted graphs built (k=2 edges=%d, k=3 edges=%d)",
		runID, len(graph2.Cols)/2, len(graph3.Cols)/2)

	dist2, err := apsp.Run(ctx, graph2, cfg.Backend, apsp.WithConcurrency(cfg.Concurrency))
	if err != nil {
		return nil, fmt.Errorf("pipeline: run %s: k=2 apsp: %w", runID, err)
	}
	dist3, err := apsp.Run(ctx, graph3, cfg.Backend, apsp.WithConcurrency(cfg.Concurrency))
	if err != nil {
		return nil, fmt.Errorf("pipeline: run %s: k=3 apsp: %w", runID, err)
	}
	log.Printf("pipeline run %s: apsp complete", runID)

	credits := tables.DefaultCredits()
	if cfg.CreditsPath != "" {
		credits, err = tables.LoadCredits(cfg.CreditsPath)
		if err != nil {
			return nil, fmt.Errorf("pipeline: run %s: loading credits table: %w", runID, err)
		}
	}

	aggOpts := []tradeflow.Option{tradeflow.WithConcurrency(cfg.Concurrency)}
	if cfg.Parallel {
		aggOpts = append(aggOpts, tradeflow.WithParallel(true))
	}
	if err := tradeflow.Aggregate(ctx, set, dist2, dist3, credits, aggOpts...); err != nil {
		return nil, fmt.Errorf("pipeline: run %s: aggregating trade flow: %w", runID, err)
	}
	log.Printf("pipeline run %s: trade flow aggregated", runID)

	return &Result{
		RunID:  runID,
		Set:    set,
		Graph2: graph2,
		Graph3: graph3,
		Dist2:  dist2,
		Dist3:  dist3,
	}, nil
}
