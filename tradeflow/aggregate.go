package tradeflow

import (
	"context"

	"github.com/hexroute/astrotrade/apsp"
	"github.com/hexroute/astrotrade/internal/worker"
	"github.com/hexroute/astrotrade/tables"
	"github.com/hexroute/astrotrade/worldmodel"
)

// Options configures Aggregate.
type Options struct {
	// Parallel selects the "parallel-by-source" scheduling policy of
	// spec.md §5 over the default single-threaded O(N^2) iteration.
	Parallel bool
	// Concurrency bounds worker count when Parallel is set; zero means
	// GOMAXPROCS(0) (see internal/worker.Run).
	Concurrency int
}

// Option mutates Options.
type Option func(*Options)

// WithParallel selects per-source parallel scheduling for Aggregate.
func WithParallel(parallel bool) Option {
	return func(o *Options) { o.Parallel = parallel }
}

// WithConcurrency bounds the worker pool width when Parallel is set.
func WithConcurrency(n int) Option {
	return func(o *Options) { o.Concurrency = n }
}

// classifyTier maps a BTN to a route tier (spec.md §4.6): BTN >= 12 ->
// major, 11 -> main, 10 -> intermediate, 9 -> feeder, 8 -> minor, below
// 8 -> no tier.
func classifyTier(btn float64) worldmodel.RouteTier {
	switch {
	case btn >= 12:
		return worldmodel.TierMajor
	case btn >= 11:
		return worldmodel.TierMain
	case btn >= 10:
		return worldmodel.TierIntermediate
	case btn >= 9:
		return worldmodel.TierFeeder
	case btn >= 8:
		return worldmodel.TierMinor
	default:
		return worldmodel.TierNone
	}
}

// pairFlow is the computed trade contribution of a single world pair,
// ready to be credited to the worlds and path edges it touches.
type pairFlow struct {
	path   []int32
	credit float64
	tier   worldmodel.RouteTier
}

// computePair evaluates one unordered pair (aIdx, bIdx) against
// spec.md §4.6 steps a-f: it prefers dist2 (k=2, "standard commerce")
// and falls back to dist3 (k=3, "long-range") only when the pair is
// unreachable at k=2, matching §8 scenario 6 (Aramis<->Andor unreachable
// at k=2, reachable at k=3). It returns nil if the pair is unreachable
// at both radii.
func computePair(set *worldmodel.Set, dist2, dist3 *apsp.Result, credits tables.CreditsTable, aIdx, bIdx int) *pairFlow {
	res := dist2
	dist, _ := dist2.At(aIdx, bIdx)
	if Unreachable(dist) {
		res = dist3
		dist, _ = dist3.At(aIdx, bIdx)
		if Unreachable(dist) {
			return nil
		}
	}

	a, b := set.At(aIdx), set.At(bIdx)
	btn := BTN(a, b, dist)

	path, ok := ReconstructPath(res, aIdx, bIdx)
	if !ok {
		return nil
	}

	magnitude := credits.Lookup(int(2 * btn))
	tier := classifyTier(btn)

	return &pairFlow{path: path, credit: magnitude, tier: tier}
}

// applyPair credits a computed pairFlow to every world it touches:
// both path endpoints gain endpoint trade credit, every interior world
// gains transient trade credit, and every consecutive edge along the
// path is promoted (never demoted) to the flow's tier.
func applyPair(set *worldmodel.Set, pf *pairFlow) {
	n := len(pf.path)
	set.At(int(pf.path[0])).EndpointTradeCredits += pf.credit
	set.At(int(pf.path[n-1])).EndpointTradeCredits += pf.credit
	for i := 1; i < n-1; i++ {
		set.At(int(pf.path[i])).TransientTradeCredits += pf.credit
	}

	if pf.tier == worldmodel.TierNone {
		return
	}
	for i := 0; i < n-1; i++ {
		u := set.At(int(pf.path[i]))
		v := set.At(int(pf.path[i+1]))
		u.PromoteTier(v.Coords, pf.tier)
		v.PromoteTier(u.Coords, pf.tier)
	}
}

// Aggregate implements spec.md §4.6 over every unordered pair {a,b}
// with a.Index < b.Index: it credits endpoint and transient trade
// credits, and promotes route-tier membership along each pair's
// reconstructed shortest path. dist2/dist3 must be the apsp.Result
// computed for jump radii 2 and 3 respectively, over the same set.
func Aggregate(ctx context.Context, set *worldmodel.Set, dist2, dist3 *apsp.Result, credits tables.CreditsTable, opts ...Option) error {
	if set == nil {
		return ErrNilSet
	}
	if dist2 == nil || dist3 == nil {
		return ErrNilResult
	}
	n := set.Len()
	if dist2.N != n || dist3.N != n {
		return ErrDimensionMismatch
	}

	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.Parallel {
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				if pf := computePair(set, dist2, dist3, credits, a, b); pf != nil {
					applyPair(set, pf)
				}
			}
		}
		return nil
	}

	// Parallel-by-source (spec.md §5): each worker owns the pairs for
	// one source index and accumulates them into its own slice, so no
	// locking is needed during the fan-out. The merge pass afterwards is
	// single-threaded and order-independent: credit addition commutes,
	// and tier promotion is idempotent highest-wins (spec.md §4.6's
	// determinism guarantee).
	partials := make([][]*pairFlow, n)
	err := worker.Run(ctx, n, cfg.Concurrency, func(a int) error {
		var local []*pairFlow
		for b := a + 1; b < n; b++ {
			if pf := computePair(set, dist2, dist3, credits, a, b); pf != nil {
				local = append(local, pf)
			}
		}
		partials[a] = local
		return nil
	})
	if err != nil {
		return err
	}

	for _, local := range partials {
		for _, pf := range local {
			applyPair(set, pf)
		}
	}

	return nil
}
