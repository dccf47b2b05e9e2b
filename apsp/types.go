package apsp

import "math"

// Infinity is the sentinel for "unreachable" in a Dist matrix. It is
// chosen far above any realistic path sum (spec.md §3: "INFINITY must
// exceed any realistic path sum") while leaving headroom below
// math.MaxInt32 for distance arithmetic that must not overflow when
// comparing against it. NoPred sits just below it.
const Infinity int32 = math.MaxInt32 / 2

// NoPred is the sentinel for "no predecessor": either i == j, or j is
// unreachable from i (spec.md §3, §4.4).
const NoPred int32 = Infinity - 1

// Backend selects one of the three interchangeable APSP algorithms. It
// is a closed tagged variant (spec.md §9), not a string.
type Backend int

const (
	// BackendDijkstra is parallel, per-source, binary-heap Dijkstra.
	BackendDijkstra Backend = iota
	// BackendDial is parallel, per-source, bucket-queue Dijkstra.
	BackendDial
	// BackendFloyd is single-threaded Floyd-Warshall, reference-only.
	BackendFloyd
)

// String renders a Backend for log lines and test failure messages.
func (b Backend) String() string {
	switch b {
	case BackendDijkstra:
		return "dijkstra"
	case BackendDial:
		return "dial"
	case BackendFloyd:
		return "floyd"
	default:
		return "unknown"
	}
}

// Result holds the two N×N matrices Run produces, each a single
// contiguous row-major []int32 block (spec.md §5: "allocated as a single
// contiguous N×N block and sliced row-wise"). Index (i,j) lives at
// i*N+j.
type Result struct {
	N    int
	Dist []int32
	Pred []int32
}

// At returns (dist[i][j], pred[i][j]).
func (r *Result) At(i, j int) (dist int32, pred int32) {
	idx := i*r.N + j
	return r.Dist[idx], r.Pred[idx]
}

// newResult allocates a Result with Dist initialised to Infinity
// (diagonal will be corrected to 0 by the caller) and Pred to NoPred.
func newResult(n int) *Result {
	r := &Result{N: n, Dist: make([]int32, n*n), Pred: make([]int32, n*n)}
	for i := range r.Dist {
		r.Dist[i] = Infinity
		r.Pred[i] = NoPred
	}
	return r
}

// Options configures Run.
type Options struct {
	// Concurrency bounds the number of source vertices processed at once
	// by BackendDijkstra/BackendDial. Zero (the default) means
	// GOMAXPROCS(0); it is ignored by BackendFloyd, which is always
	// single-threaded.
	Concurrency int
}

// Option mutates Options, following the teacher's functional-options
// idiom (core.GraphOption, dijkstra.Option).
type Option func(*Options)

// WithConcurrency overrides the default worker-pool width.
func WithConcurrency(n int) Option {
	return func(o *Options) { o.Concurrency = n }
}
