package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Encoder turns bytes into Huffman-coded bits.
type Encoder struct {
	book *Codebook
}

// Init initializes this Encoder from a tree built by BuildTree.
func (e *Encoder) Init(root Node) {
	*e = Encoder{book: NewCodebook(root)}
}

// Codebook returns the Codebook in use.
func (e *Encoder) Codebook() *Codebook {
	return e.book
}

// EncodedSize returns the number of bits Encode will produce for an input
// with the given frequencies.
func (e *Encoder) EncodedSize(ft *FrequencyTable) uint64 {
	var total uint64
	for _, symbol := range ft.Symbols() {
		hc, ok := e.book.Lookup(symbol)
		assert.Assertf(ok, "symbol %v has no code", symbol)
		total += uint64(hc.Size) * ft.Count(symbol)
	}
	return total
}

// Encode appends the Code of each byte of data to p, in order.  Every byte
// must have a leaf in the tree this Encoder was initialized with.
func (e *Encoder) Encode(p *BitPacker, data []byte) error {
	for _, b := range data {
		hc, ok := e.book.Lookup(Symbol(b))
		assert.Assertf(ok, "symbol %v has no code", Symbol(b))
		if err := p.WriteCode(hc); err != nil {
			return err
		}
	}
	return nil
}
