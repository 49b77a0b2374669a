package bits

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *RangeError.
var ErrOutOfRange = errors.New("bits: index out of range")

// RangeError records a bit index or count that does not fit the integer type.
type RangeError struct {
	Op    string // operation that rejected the index
	Index uint8  // offending bit index, or bit count when Count is set
	Width uint8  // bit width of the integer type
	Count bool
}

func (e *RangeError) Error() string {
	kind := "bit"
	if e.Count {
		kind = "count"
	}
	return fmt.Sprintf("bits: %s: %s %d out of range for %d-bit integer", e.Op, kind, e.Index, e.Width)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
