package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitSequence is an ordered, finite sequence of bits.
type BitSequence []bool

// String returns the bits as a string of '0' and '1' characters.
func (bits BitSequence) String() string {
	out := make([]byte, len(bits))
	for i, bit := range bits {
		out[i] = '0'
		if bit {
			out[i] = '1'
		}
	}
	return string(out)
}

// BitPacker packs bits into bytes, most significant bit first.  The final
// byte is padded with zero bits, so the exact number of bits written must be
// kept alongside the bytes.
type BitPacker struct {
	buf    bytes.Buffer
	w      *bitio.Writer
	n      uint64
	closed bool
}

// NewBitPacker returns an empty BitPacker.
func NewBitPacker() *BitPacker {
	p := new(BitPacker)
	p.w = bitio.NewWriter(&p.buf)
	return p
}

// WriteBit appends a single bit.
func (p *BitPacker) WriteBit(bit bool) error {
	assert.Assertf(!p.closed, "BitPacker written after Bytes")
	if err := p.w.WriteBool(bit); err != nil {
		return err
	}
	p.n++
	return nil
}

// WriteCode appends all bits of hc, first bit first.
func (p *BitPacker) WriteCode(hc Code) error {
	assert.Assertf(!p.closed, "BitPacker written after Bytes")
	if hc.Size == 0 {
		return nil
	}
	if err := p.w.WriteBits(hc.Bits, hc.Size); err != nil {
		return err
	}
	p.n += uint64(hc.Size)
	return nil
}

// Len returns the number of bits written so far.
func (p *BitPacker) Len() uint64 {
	return p.n
}

// Bytes pads the final partial byte with zeros and returns the packed bytes
// together with the exact number of bits they hold.  No more bits may be
// written afterward.
func (p *BitPacker) Bytes() ([]byte, uint64, error) {
	if !p.closed {
		p.closed = true
		if err := p.w.Close(); err != nil {
			return nil, 0, err
		}
	}
	assert.Assertf(uint64(p.buf.Len()) == byteLen(p.n), "packed %d bits into %d bytes", p.n, p.buf.Len())
	return p.buf.Bytes(), p.n, nil
}

// BitUnpacker reads back bits packed by a BitPacker, stopping at the
// declared bit length so that padding bits are never returned.
type BitUnpacker struct {
	r         *bitio.Reader
	remaining uint64
}

// NewBitUnpacker returns a BitUnpacker over the first bitLen bits of buf.
// It fails with ErrInsufficientBytes if buf holds fewer than bitLen bits.
func NewBitUnpacker(buf []byte, bitLen uint64) (*BitUnpacker, error) {
	if have := 8 * uint64(len(buf)); bitLen > have {
		return nil, fmt.Errorf("%w: declared %d bits, payload holds %d", ErrInsufficientBytes, bitLen, have)
	}
	return &BitUnpacker{r: bitio.NewReader(bytes.NewReader(buf)), remaining: bitLen}, nil
}

// ReadBit returns the next bit, or io.EOF once the declared bit length has
// been consumed.
func (u *BitUnpacker) ReadBit() (bool, error) {
	if u.remaining == 0 {
		return false, io.EOF
	}
	bit, err := u.r.ReadBool()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInsufficientBytes, err)
	}
	u.remaining--
	return bit, nil
}

// Remaining returns the number of bits not yet read.
func (u *BitUnpacker) Remaining() uint64 {
	return u.remaining
}

// Pack packs bits into bytes, most significant bit first, and returns the
// bytes with the number of meaningful bits in them.
func Pack(bits BitSequence) ([]byte, uint64) {
	p := NewBitPacker()
	for _, bit := range bits {
		err := p.WriteBit(bit)
		assert.Assertf(err == nil, "write to bytes.Buffer failed: %v", err)
	}
	buf, n, err := p.Bytes()
	assert.Assertf(err == nil, "write to bytes.Buffer failed: %v", err)
	return buf, n
}

// Unpack returns the first bitLen bits of buf, ignoring any padding after
// them.  It fails with ErrInsufficientBytes if bitLen exceeds 8*len(buf).
func Unpack(buf []byte, bitLen uint64) (BitSequence, error) {
	u, err := NewBitUnpacker(buf, bitLen)
	if err != nil {
		return nil, err
	}
	out := make(BitSequence, 0, bitLen)
	for u.Remaining() != 0 {
		bit, err := u.ReadBit()
		if err != nil {
			return nil, err
		}
		out = append(out, bit)
	}
	return out, nil
}
