package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when an operation needs at least one element.
	ErrEmpty = errors.New("empty input")

	// ErrInvalidDimension is returned for points without coordinates.
	ErrInvalidDimension = errors.New("dimension must be positive")

	// ErrNonFinite is returned when a point contains NaN or an infinity.
	ErrNonFinite = errors.New("non-finite coordinate")
)

// ErrDimensionMismatch indicates that two points (or a point and the
// dataset it belongs to) do not have the same number of coordinates.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
