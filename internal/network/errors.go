package network

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrEmptyNetwork    = errors.New("network has no components")
	ErrNilNetwork      = errors.New("nil network")
	ErrMissingParam    = errors.New("missing parameter")
	ErrNotSerializable = errors.New("network does not support decoding")
)

// ShapeError reports incompatible port signatures detected while building a
// composite network or a feed-forward stack.
type ShapeError struct {
	Op      string // Operation being built (e.g., "and_then", "replicate_with")
	Left    Port   // Port of the first component
	Right   Port   // Port of the second component
	Details string // Additional details
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: shape mismatch between %v and %v", e.Op, e.Left, e.Right)
	}
	return fmt.Sprintf("%s: shape mismatch between %v and %v: %s", e.Op, e.Left, e.Right, e.Details)
}

// Unwrap returns ErrShapeMismatch so callers can use errors.Is.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
