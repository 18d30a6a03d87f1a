// Package core provides the color-field engine and turn state machine for
// RGB Alchemy. This package is UI-agnostic and deterministic.
package core

import "errors"

var (
	// ErrInvalidIDFormat is returned for a cell id that is not "x,y".
	ErrInvalidIDFormat = errors.New("invalid cell id format")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrOutOfBounds is returned for a well-formed id outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrNotSource is returned when an operation needs a source cell.
	ErrNotSource = errors.New("cell is not a source")

	// ErrInvalidTransition is returned for an action the current phase forbids.
	// Callers treat it as a no-op.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidDrop is returned for a tile drop that has no game effect.
	ErrInvalidDrop = errors.New("invalid drop")
)
