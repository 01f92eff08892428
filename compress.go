package huffman

import (
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Compress returns the Huffman-compressed form of input.
//
// Empty input has no alphabet to build a code from and fails with
// ErrEmptyAlphabet.  Input longer than math.MaxUint32 bytes, or whose coded
// form exceeds math.MaxUint32 bits, fails with ErrInputTooLarge.
//
func Compress(input []byte) ([]byte, error) {
	if uint64(len(input)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(input))
	}

	ft := CountFrequencies(input)
	root, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}

	var e Encoder
	e.Init(root)
	bitLen := e.EncodedSize(ft)
	if bitLen > math.MaxUint32 {
		return nil, fmt.Errorf("%w: coded form is %d bits", ErrInputTooLarge, bitLen)
	}

	p := NewBitPacker()
	if err := e.Encode(p, input); err != nil {
		return nil, err
	}
	payload, n, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	assert.Assertf(n == bitLen, "wrote %d bits, expected %d", n, bitLen)

	c := Container{
		TreeData:    SerializeTree(root),
		BitLength:   uint32(n),
		SymbolCount: uint32(len(input)),
		Payload:     payload,
	}
	return c.MarshalBinary()
}

// Decompress returns the original input of a blob produced by Compress.
func Decompress(blob []byte) ([]byte, error) {
	var c Container
	if err := c.UnmarshalBinary(blob); err != nil {
		return nil, err
	}

	root, err := DeserializeTree(c.TreeData)
	if err != nil {
		return nil, err
	}

	var d Decoder
	if err := d.Init(root); err != nil {
		return nil, err
	}

	u, err := NewBitUnpacker(c.Payload, uint64(c.BitLength))
	if err != nil {
		return nil, err
	}

	return d.DecodeAll(u, uint64(c.SymbolCount))
}

// Stats describes a compressed blob.
type Stats struct {
	TreeSize    int
	BitLength   uint64
	SymbolCount uint64
	PayloadSize int
	TotalSize   int
}

// Ratio returns the compressed size as a fraction of the original size.
func (s Stats) Ratio() float64 {
	if s.SymbolCount == 0 {
		return 0
	}
	return float64(s.TotalSize) / float64(s.SymbolCount)
}

// BitsPerSymbol returns the average coded length of one input byte,
// excluding the header and tree.
func (s Stats) BitsPerSymbol() float64 {
	if s.SymbolCount == 0 {
		return 0
	}
	return float64(s.BitLength) / float64(s.SymbolCount)
}

// String returns a one-line human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d -> %d bytes (%.2f%%), tree %d bytes, %.3f bits/symbol",
		s.SymbolCount, s.TotalSize, 100*s.Ratio(), s.TreeSize, s.BitsPerSymbol())
}

// Inspect parses the container header of blob and reports its sizes,
// without decoding the payload.
func Inspect(blob []byte) (Stats, error) {
	var c Container
	if err := c.UnmarshalBinary(blob); err != nil {
		return Stats{}, err
	}
	return Stats{
		TreeSize:    len(c.TreeData),
		BitLength:   uint64(c.BitLength),
		SymbolCount: uint64(c.SymbolCount),
		PayloadSize: len(c.Payload),
		TotalSize:   len(blob),
	}, nil
}
