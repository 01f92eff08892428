package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Codebook maps each Symbol in a tree to the path from the root to its leaf.
type Codebook struct {
	codes   [NumSymbols]Code
	numLeaf int
	minSize byte
	maxSize byte
}

// NewCodebook walks the tree and returns its Codebook.  The root must be an
// *Internal node, so that every code is at least one bit long.
func NewCodebook(root Node) *Codebook {
	_, isInternal := root.(*Internal)
	assert.Assertf(isInternal, "root must be *Internal, got %T", root)

	cb := new(Codebook)
	cb.walk(root, Code{})
	return cb
}

func (cb *Codebook) walk(n Node, prefix Code) {
	switch x := n.(type) {
	case *Leaf:
		assert.Assertf(cb.codes[x.Symbol].Size == 0, "symbol %v appears twice in tree", x.Symbol)
		cb.codes[x.Symbol] = prefix
		if cb.numLeaf == 0 {
			cb.minSize = prefix.Size
			cb.maxSize = prefix.Size
		} else if cb.minSize > prefix.Size {
			cb.minSize = prefix.Size
		} else if cb.maxSize < prefix.Size {
			cb.maxSize = prefix.Size
		}
		cb.numLeaf++
	case *Internal:
		cb.walk(x.Left, prefix.Append(0))
		cb.walk(x.Right, prefix.Append(1))
	default:
		panic(fmt.Errorf("unexpected tree node type %T", n))
	}
}

// Lookup returns the Code for symbol.  The second result is false if the
// symbol has no leaf in the tree.
func (cb *Codebook) Lookup(symbol Symbol) (Code, bool) {
	hc := cb.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a Code.
func (cb *Codebook) Len() int {
	return cb.numLeaf
}

// MinSize is the bit length of the shortest Code.
func (cb *Codebook) MinSize() byte {
	return cb.minSize
}

// MaxSize is the bit length of the longest Code.
func (cb *Codebook) MaxSize() byte {
	return cb.maxSize
}

// Dump writes a programmer-readable debugging dump of the Codebook to the
// given writer.  Symbols without a Code are omitted.
func (cb *Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.maxSize)
	for i := 0; i < NumSymbols; i++ {
		symbol := Symbol(i)
		if hc, ok := cb.Lookup(symbol); ok {
			fmt.Fprintf(&buf, "\tLookup(%v) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
