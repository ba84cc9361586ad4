package romi

import "errors"

// Every structural invariant violation is fatal to the generation
// pass: it signals a defect in the fixed calibration constants, not a
// recoverable condition.
var (
	// ErrNoOriginAnchor indicates a hex pattern without an 'O' cell.
	ErrNoOriginAnchor = errors.New("romi: hex pattern has no 'O' origin anchor")
	// ErrDuplicateOriginAnchor indicates a hex pattern with more than one 'O' cell.
	ErrDuplicateOriginAnchor = errors.New("romi: hex pattern has more than one 'O' origin anchor")
	// ErrUnknownAnchor indicates a slot pair naming a letter absent from the pattern.
	ErrUnknownAnchor = errors.New("romi: slot pair references an unknown anchor")
	// ErrOutlinePointCount indicates an outline whose point count is not 2*arcs+4.
	ErrOutlinePointCount = errors.New("romi: outline point count mismatch")
	// ErrOutlineRadius indicates an outline arc endpoint off the nominal radius.
	ErrOutlineRadius = errors.New("romi: outline arc endpoint off the nominal radius")
)
