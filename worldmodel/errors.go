package worldmodel

import "errors"

// Sentinel errors for worldmodel operations.
var (
	// ErrBadDigit indicates a byte outside the base-34 UWP digit alphabet.
	ErrBadDigit = errors.New("worldmodel: not a valid UWP digit")

	// ErrEmptyName indicates a World was built with an empty Name.
	ErrEmptyName = errors.New("worldmodel: world name is empty")

	// ErrDuplicateCoords indicates two worlds were added at the same Coords.
	ErrDuplicateCoords = errors.New("worldmodel: duplicate world coordinates")

	// ErrBadStarport indicates a starport class outside {A,B,C,D,E,X}.
	ErrBadStarport = errors.New("worldmodel: starport must be one of A,B,C,D,E,X")

	// ErrBadZone indicates a zone marker outside {G,A,R}.
	ErrBadZone = errors.New("worldmodel: zone must be one of G (green), A (amber), R (red)")
)

// InvariantError reports a broken internal invariant — a programmer error,
// not a data error (spec.md §7). Callers must not attempt local recovery;
// InvariantError is meant to propagate to an abort.
type InvariantError struct {
	// Op names the operation that detected the breach.
	Op string
	// Detail explains what invariant failed.
	Detail string
}

func (e *InvariantError) Error() string {
	return "worldmodel: invariant breach in " + e.Op + ": " + e.Detail
}
