// Package bits provides bit field access to single opcode bytes.
//
// Bit positions are numbered most significant bit first: position 0 is bit 7
// of the byte and position 7 is bit 0. This matches the way 8080 opcode
// tables split an opcode into a 2 bit prefix followed by two 3 bit fields.
package bits

import "fmt"

// Size is the number of bit positions in a Byte.
const Size = 8

// Byte wraps an opcode byte for bit field extraction.
type Byte uint8

// Field is a half open range of bit positions [Start, End).
type Field struct {
	Start uint8
	End   uint8
}

// Opcode fields used by the instruction decoders.
var (
	Prefix       = newField(0, 2) // xx______
	Middle       = newField(2, 5) // __xxx___
	Low          = newField(5, 8) // _____xxx
	PairCode     = newField(2, 4) // __xx____
	Discriminant = newField(4, 8) // ____xxxx
)

func newField(start, end uint8) Field {
	checkRange(start, end)
	return Field{Start: start, End: end}
}

// Extract returns the bits of the field in b, right aligned.
func (f Field) Extract(b Byte) uint8 {
	return b.Range(f.Start, f.End)
}

// Width returns the number of bits covered by the field.
func (f Field) Width() uint8 {
	return f.End - f.Start
}

// Bit returns the bit at the given position as 0 or 1.
// It panics if offset is not within 0..7.
func (b Byte) Bit(offset uint8) uint8 {
	if offset >= Size {
		panic(fmt.Sprintf("bit offset %d out of range", offset))
	}
	return uint8(b>>(Size-1-offset)) & 1
}

// Range returns the bits in the half open position range [start, end),
// right aligned, most significant extracted bit first.
// It panics unless start < end <= 8.
func (b Byte) Range(start, end uint8) uint8 {
	checkRange(start, end)
	mask := uint8(0xff) >> (Size - (end - start))
	return uint8(b>>(Size-end)) & mask
}

// String returns the byte in binary notation.
func (b Byte) String() string {
	return fmt.Sprintf("0b%08b", uint8(b))
}

func checkRange(start, end uint8) {
	if start >= end || end > Size {
		panic(fmt.Sprintf("bit range %d..%d out of range", start, end))
	}
}
