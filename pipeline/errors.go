package pipeline

import "errors"

// ErrNilSet indicates a nil *worldmodel.Set was passed to Run.
var ErrNilSet = errors.New("pipeline: world set is nil")
