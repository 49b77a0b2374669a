package bits

import (
	"fmt"
	"strings"
)

// Value attaches the bit queries to an integer as methods.
type Value[T Integer] struct {
	v T
}

// Of wraps v.
func Of[T Integer](v T) Value[T] {
	return Value[T]{v: v}
}

// Int returns the wrapped integer.
func (x Value[T]) Int() T {
	return x.v
}

// IsFlag reports whether the value has exactly one bit set.
func (x Value[T]) IsFlag() bool {
	return IsFlag(x.v)
}

// IsBitSet reports whether the given bit is set. See IsBitSet.
func (x Value[T]) IsBitSet(bit uint8) bool {
	return IsBitSet(x.v, bit)
}

// IsFlagSet reports whether the value shares a set bit with flag.
func (x Value[T]) IsFlagSet(flag T) bool {
	return IsFlagSet(x.v, flag)
}

// BitsAsInt extracts count bits starting at bit. See BitsAsInt.
func (x Value[T]) BitsAsInt(bit, count uint8) T {
	return BitsAsInt(x.v, bit, count)
}

// BitAt reports whether the given bit is set, or returns a *RangeError.
func (x Value[T]) BitAt(bit uint8) (bool, error) {
	return BitAt(x.v, bit)
}

// Field extracts count bits starting at bit, or returns a *RangeError.
func (x Value[T]) Field(bit, count uint8) (T, error) {
	return Field(x.v, bit, count)
}

// String renders every bit of the value in binary, grouped by nibble.
// Example: Of(uint16(0xAB0C)).String() returns "0b1010_1011_0000_1100"
func (x Value[T]) String() string {
	w := int(Width[T]())
	u := uint64(x.v) & lowMask[uint64](uint8(w))

	digits := fmt.Sprintf("%0*b", w, u)

	var sb strings.Builder
	sb.WriteString("0b")
	for i := 0; i < w; i += 4 {
		if i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(digits[i : i+4])
	}
	return sb.String()
}
