package vec

import (
	"errors"
	"fmt"
)

// ErrLength is returned when a sequence does not have the declared length.
var ErrLength = errors.New("length mismatch")

// LengthError reports a sequence whose element count differs from the
// declared length of the receiving container.
type LengthError struct {
	Expected int // Declared length
	Got      int // Number of elements actually supplied
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("length mismatch: expected %d elements, got %d", e.Expected, e.Got)
}

// Unwrap returns ErrLength so callers can use errors.Is.
func (e *LengthError) Unwrap() error {
	return ErrLength
}
