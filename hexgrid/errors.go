package hexgrid

import "errors"

var (
	// ErrBadHexLabel indicates a hex label was not a 4-digit "XXYY" string.
	ErrBadHexLabel = errors.New("hexgrid: hex label must be exactly 4 digits")
)
