package quantity

import (
	"errors"
	"fmt"

	"github.com/roach88/quanta/dim"
)

// DimensionMismatchError reports an operation restricted to equal dimensions
// that was given operands with different dimension vectors. It is the only
// error kind this package produces, and it is always surfaced to the caller
// - never retried, never coerced.
type DimensionMismatchError struct {
	// Op names the rejected operation ("add", "subtract", "compare", ...).
	Op string

	// Left and Right are the operand dimension vectors, kept for
	// diagnostics.
	Left  dim.Vector
	Right dim.Vector
}

// Error implements the error interface.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: cannot %s %q and %q", e.Op, e.Left.Unit(), e.Right.Unit())
}

// IsDimensionMismatch returns true if the error is a dimension mismatch.
// Uses errors.As to handle wrapped errors.
func IsDimensionMismatch(err error) bool {
	var de *DimensionMismatchError
	return errors.As(err, &de)
}

// newMismatch creates a DimensionMismatchError for the given operation.
func newMismatch(op string, left, right dim.Vector) *DimensionMismatchError {
	return &DimensionMismatchError{Op: op, Left: left, Right: right}
}
