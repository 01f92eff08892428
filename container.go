package huffman

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
)

// HeaderSize is the size of the fixed container header: three big-endian
// uint32 fields holding the tree length, the payload bit length and the
// symbol count.
const HeaderSize = 12

// Container is the compressed file layout:
//
//     tree_length  u32 (big-endian)
//     bit_length   u32 (big-endian)
//     symbol_count u32 (big-endian)
//     tree_data    [tree_length]byte
//     payload      [ceil(bit_length/8)]byte
//
type Container struct {
	// TreeData holds the output of SerializeTree.
	TreeData []byte

	// BitLength is the number of meaningful bits in Payload.
	BitLength uint32

	// SymbolCount is the length of the original input.
	SymbolCount uint32

	// Payload holds the packed, Huffman-coded input.
	Payload []byte
}

// MarshalBinary assembles the container bytes.
func (c Container) MarshalBinary() ([]byte, error) {
	if uint64(len(c.TreeData)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: tree data is %d bytes", ErrInputTooLarge, len(c.TreeData))
	}
	out := make([]byte, HeaderSize, HeaderSize+len(c.TreeData)+len(c.Payload))
	binary.BigEndian.PutUint32(out[0:4], uint32(len(c.TreeData)))
	binary.BigEndian.PutUint32(out[4:8], c.BitLength)
	binary.BigEndian.PutUint32(out[8:12], c.SymbolCount)
	out = append(out, c.TreeData...)
	out = append(out, c.Payload...)
	return out, nil
}

// UnmarshalBinary parses container bytes.  The slices in c alias data.
//
// A payload shorter than BitLength requires is accepted here; it is
// reported as ErrInsufficientBytes when the payload is unpacked.
//
func (c *Container) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", ErrMalformedContainer, len(data), HeaderSize)
	}

	treeLen := binary.BigEndian.Uint32(data[0:4])
	bitLen := binary.BigEndian.Uint32(data[4:8])
	count := binary.BigEndian.Uint32(data[8:12])
	rest := data[HeaderSize:]

	if uint64(treeLen) > uint64(len(rest)) {
		return fmt.Errorf("%w: tree length %d exceeds the %d bytes after the header", ErrMalformedContainer, treeLen, len(rest))
	}
	payload := rest[treeLen:]
	if want := byteLen(uint64(bitLen)); uint64(len(payload)) > want {
		return fmt.Errorf("%w: payload is %d bytes, bit length %d needs %d", ErrMalformedContainer, len(payload), bitLen, want)
	}
	if count == 0 {
		return fmt.Errorf("%w: symbol count is 0", ErrMalformedContainer)
	}
	if count > bitLen {
		return fmt.Errorf("%w: %d symbols cannot fit in %d bits", ErrMalformedContainer, count, bitLen)
	}

	*c = Container{
		TreeData:    rest[:treeLen],
		BitLength:   bitLen,
		SymbolCount: count,
		Payload:     payload,
	}
	return nil
}

var (
	_ encoding.BinaryMarshaler   = Container{}
	_ encoding.BinaryUnmarshaler = (*Container)(nil)
)
