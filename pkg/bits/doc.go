/*
Package bits implements read-only bit queries over any Go integer type.

The queries are written once against the [Integer] constraint, so they work
the same for every width and signedness: uint8 register values, uint16
status words, int32 flag sets and named types such as `type Flags uint16`.

# Operations

  - [IsFlag]: the value has exactly one bit set (a positive power of two).
  - [IsBitSet]: the bit at a 0-based index is 1.
  - [IsFlagSet]: the value shares at least one set bit with a mask.
  - [BitsAsInt]: a run of bits starting at an index, returned as an integer.

Bit indexes are 0-based and counted from the least-significant bit. A bit
index must be lower than [Width] of the type, and an extraction count must not
exceed it. A bad index is a programming error: [IsBitSet] and [BitsAsInt]
panic with a [*RangeError]. Callers that handle untrusted indexes use the
checked variants [BitAt] and [Field], which return the same error instead.

# Usage Example: Decoding a CLA byte

	cla := byte(0b0_0_11_1_11)

	if bits.IsBitSet(cla, 7) {
	    fmt.Println("proprietary class")
	}

	sm := bits.BitsAsInt(cla, 2, 2)      // secure messaging indicator
	channel := bits.BitsAsInt(cla, 0, 2) // logical channel 0-3
	chained := bits.IsBitSet(cla, 4)

The same queries are available as methods through [Of]:

	v := bits.Of(uint16(0xAB0C))
	v.BitsAsInt(8, 4) // 0xB
	fmt.Println(v)    // 0b1010_1011_0000_1100
*/
package bits
