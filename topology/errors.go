package topology

import "errors"

var (
	// ErrNilSet indicates a nil *worldmodel.Set was passed to a builder.
	ErrNilSet = errors.New("topology: world set is nil")

	// ErrBadRadius indicates a jump radius outside the supported {1,2,3}.
	ErrBadRadius = errors.New("topology: jump radius must be 1, 2, or 3")
)
