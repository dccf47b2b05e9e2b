package pipeline

import "github.com/hexroute/astrotrade/apsp"

// Config configures a Run, built via functional options following the
// teacher pack's recurring Option pattern (apsp.Option, tradeflow.Option).
type Config struct {
	// Backend selects the APSP algorithm (default apsp.BackendDijkstra).
	Backend apsp.Backend
	// Concurrency bounds worker-pool width for APSP and, if Parallel is
	// set, aggregation. Zero means GOMAXPROCS(0).
	Concurrency int
	// Parallel selects parallel-by-source aggregation (spec.md §5).
	Parallel bool
	// CreditsPath, if non-empty, is a YAML file loaded via
	// tables.LoadCredits; empty uses tables.DefaultCredits.
	CreditsPath string
}

// Option mutates Config.
type Option func(*Config)

// WithBackend overrides the default APSP backend.
func WithBackend(b apsp.Backend) Option {
	return func(c *Config) { c.Backend = b }
}

// WithConcurrency bounds worker-pool width.
func WithConcurrency(n int) Option {
	return func(c *Config) { c.Concurrency = n }
}

// WithParallelAggregate selects parallel-by-source aggregation.
func WithParallelAggregate(parallel bool) Option {
	return func(c *Config) { c.Parallel = parallel }
}

// WithCreditsFile points the pipeline at a YAML DBTN_TO_CREDITS table.
func WithCreditsFile(path string) Option {
	return func(c *Config) { c.CreditsPath = path }
}

func defaultConfig() Config {
	return Config{Backend: apsp.BackendDijkstra}
}
