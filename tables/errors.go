package tables

import "errors"

var (
	// ErrEmptyCredits is returned by LoadCredits when a YAML file parses
	// to zero entries; an empty table would make every BTN contribute no
	// trade credit at all, which is never the intended configuration.
	ErrEmptyCredits = errors.New("tables: credits table is empty")

	// ErrNonAscending is returned when a loaded credits table is not
	// weakly ascending by index (spec.md §6: "ascending values").
	ErrNonAscending = errors.New("tables: credits table must be ascending")
)
