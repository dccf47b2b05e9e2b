package apsp

import "errors"

var (
	// ErrNilGraph indicates a nil *topology.Graph was passed to Run.
	ErrNilGraph = errors.New("apsp: graph is nil")

	// ErrTooManyVertices indicates N >= NoPred, which would make the
	// NoPred sentinel ambiguous with a real vertex index (spec.md §9:
	// "N < NO_PRED").
	ErrTooManyVertices = errors.New("apsp: vertex count must be less than the NoPred sentinel")

	// ErrUnknownBackend indicates a Backend value outside the closed set
	// {BackendDijkstra, BackendDial, BackendFloyd}.
	ErrUnknownBackend = errors.New("apsp: unknown backend")
)
