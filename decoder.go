package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Decoder turns Huffman-coded bits back into bytes by walking the code tree
// from the root, one bit per Internal node, until a Leaf is reached.
type Decoder struct {
	root *Internal
}

// Init initializes this Decoder.  A tree whose root is a Leaf is rejected,
// since its only symbol would have an empty code.
func (d *Decoder) Init(root Node) error {
	internal, ok := root.(*Internal)
	if !ok {
		return fmt.Errorf("%w: tree root is %T, not an internal node", ErrMalformedContainer, root)
	}
	*d = Decoder{root: internal}
	return nil
}

// Decode reads bits from u until they spell out one Code, and returns the
// corresponding Symbol.  It returns io.EOF if u runs out of bits first;
// a partially consumed Code is lost in that case.
func (d *Decoder) Decode(u *BitUnpacker) (Symbol, error) {
	assert.Assertf(d.root != nil, "Decoder used before Init")
	var n Node = d.root
	for {
		switch x := n.(type) {
		case *Leaf:
			return x.Symbol, nil
		case *Internal:
			bit, err := u.ReadBit()
			if err != nil {
				return 0, err
			}
			if bit {
				n = x.Right
			} else {
				n = x.Left
			}
		default:
			panic(fmt.Errorf("unexpected tree node type %T", n))
		}
	}
}

// DecodeAll decodes exactly count symbols from u.  It fails with
// ErrCorruptBitstream if the bits run out before count symbols are decoded,
// or if bits are left over afterward.
func (d *Decoder) DecodeAll(u *BitUnpacker, count uint64) ([]byte, error) {
	out := make([]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		symbol, err := d.Decode(u)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: bits exhausted after %d of %d symbols", ErrCorruptBitstream, i, count)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, byte(symbol))
	}
	if rem := u.Remaining(); rem != 0 {
		return nil, fmt.Errorf("%w: %d bits left over after %d symbols", ErrCorruptBitstream, rem, count)
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's tree to
// the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	if d.root == nil {
		n, err := io.WriteString(w, "Decoder{}\n")
		return int64(n), err
	}
	return DumpTree(w, d.root)
}
