package bits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of types the bit queries operate on: every signed and
// unsigned integer type, including named types built on them.
type Integer interface {
	constraints.Integer
}

// Width returns the number of bits used to represent T (8, 16, 32 or 64).
func Width[T Integer]() uint8 {
	var zero T
	return uint8(unsafe.Sizeof(zero) * 8)
}

// Mask returns a value of type T with only the given bit set (0-based).
// It panics with a *RangeError if bit is not lower than Width[T]().
func Mask[T Integer](bit uint8) T {
	if err := checkIndex[T]("Mask", bit); err != nil {
		panic(err)
	}
	return T(1) << bit
}

// LowMask returns a value of type T with its count least-significant bits set.
// A count of 0 yields 0 and a count of Width[T]() yields all bits set.
// It panics with a *RangeError if count exceeds Width[T]().
func LowMask[T Integer](count uint8) T {
	if err := checkCount[T]("LowMask", count); err != nil {
		panic(err)
	}
	return lowMask[T](count)
}

// IsFlag reports whether v has exactly one bit set.
// Zero and negative values are never flags.
func IsFlag[T Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// IsBitSet reports whether the given bit (0-based) of v is set.
// For signed types the sign bit always reports false, see IsFlagSet.
// It panics with a *RangeError if bit is not lower than Width[T]().
func IsBitSet[T Integer](v T, bit uint8) bool {
	set, err := BitAt(v, bit)
	if err != nil {
		panic(err)
	}
	return set
}

// IsFlagSet reports whether v & flag is greater than zero. For unsigned types
// this means v and flag share at least one set bit. A zero flag is never set.
//
// For signed types a shared sign bit makes v & flag negative, so the result is
// false whenever v and flag are both negative, even if lower bits overlap.
func IsFlagSet[T Integer](v, flag T) bool {
	return v&flag > 0
}

// BitsAsInt returns count bits of v starting at bit, moved down to bit 0.
// This is a right shift by bit masked with (1 << count) - 1.
// Example: BitsAsInt(0xAB000, 12, 8) returns 0xAB
//
// It panics with a *RangeError if bit is not lower than Width[T]() or count
// exceeds it.
func BitsAsInt[T Integer](v T, bit, count uint8) T {
	res, err := Field(v, bit, count)
	if err != nil {
		panic(err)
	}
	return res
}

// BitAt is IsBitSet returning an error, matching ErrOutOfRange, instead of
// panicking when bit is out of range.
func BitAt[T Integer](v T, bit uint8) (bool, error) {
	if err := checkIndex[T]("IsBitSet", bit); err != nil {
		return false, err
	}
	return IsFlagSet(v, T(1)<<bit), nil
}

// Field is BitsAsInt returning an error, matching ErrOutOfRange, instead of
// panicking when bit or count is out of range.
func Field[T Integer](v T, bit, count uint8) (T, error) {
	if err := checkIndex[T]("BitsAsInt", bit); err != nil {
		return 0, err
	}
	if err := checkCount[T]("BitsAsInt", count); err != nil {
		return 0, err
	}
	return (v >> bit) & lowMask[T](count), nil
}

// lowMask expects count <= Width[T]().
func lowMask[T Integer](count uint8) T {
	if count == Width[T]() {
		return ^T(0)
	}
	return (T(1) << count) - 1
}

func checkIndex[T Integer](op string, bit uint8) error {
	if w := Width[T](); bit >= w {
		return &RangeError{Op: op, Index: bit, Width: w}
	}
	return nil
}

func checkCount[T Integer](op string, count uint8) error {
	if w := Width[T](); count > w {
		return &RangeError{Op: op, Index: count, Width: w, Count: true}
	}
	return nil
}
