package tradeflow

import "errors"

var (
	// ErrNilSet indicates a nil *worldmodel.Set was passed to Aggregate.
	ErrNilSet = errors.New("tradeflow: world set is nil")

	// ErrNilResult indicates a nil *apsp.Result was passed to Aggregate
	// for a radius that Aggregate needed to consult.
	ErrNilResult = errors.New("tradeflow: apsp result is nil")

	// ErrDimensionMismatch indicates an apsp.Result's N does not match
	// the world set's Len(); the two must describe the same graph.
	ErrDimensionMismatch = errors.New("tradeflow: apsp result dimension does not match world set")
)
