package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest Code that can be represented.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the most
	// significant of the Size low-order bits; all higher bits are zero.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeSize, "size %d > MaxCodeSize %d", size, MaxCodeSize)
	if size < MaxCodeSize {
		bits &= (uint64(1) << size) - 1
	}
	return Code{Size: size, Bits: bits}
}

// Append returns the Code with one more bit, 0 or 1, added at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "cannot extend a Code of %d bits", hc.Size)
	assert.Assertf(bit <= 1, "bit %d is not 0 or 1", bit)
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit)}
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i byte) bool {
	assert.Assertf(i < hc.Size, "bit index %d out of range for Code of %d bits", i, hc.Size)
	return (hc.Bits>>(hc.Size-1-i))&1 != 0
}

// HasPrefix reports whether prefix is a leading subsequence of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Sequence returns the bits of this Code as a BitSequence.
func (hc Code) Sequence() BitSequence {
	out := make(BitSequence, hc.Size)
	for i := byte(0); i < hc.Size; i++ {
		out[i] = hc.Bit(i)
	}
	return out
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
