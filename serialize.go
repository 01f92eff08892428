package huffman

import (
	"fmt"
)

// Tree serialization tags.  A leaf tag is followed by one symbol byte; an
// internal tag is followed by the left subtree and then the right subtree.
const (
	tagInternal byte = 0
	tagLeaf     byte = 1
)

// SerializeTree encodes the shape and leaf symbols of a tree as a pre-order
// stream of tagged nodes.  Weights are not encoded.
func SerializeTree(root Node) []byte {
	return appendNode(nil, root)
}

func appendNode(out []byte, n Node) []byte {
	switch x := n.(type) {
	case *Leaf:
		return append(out, tagLeaf, byte(x.Symbol))
	case *Internal:
		out = append(out, tagInternal)
		out = appendNode(out, x.Left)
		return appendNode(out, x.Right)
	default:
		panic(fmt.Errorf("unexpected tree node type %T", n))
	}
}

// DeserializeTree rebuilds a tree from the output of SerializeTree.  All
// weights in the result are 0.
//
// It fails with ErrTruncatedTreeData if data ends in the middle of a node,
// with ErrInvalidTag for an unknown tag byte, and with ErrMalformedContainer
// if a symbol appears twice, the tree is deeper than any tree over the byte
// alphabet can be, or bytes are left over after the root is complete.
//
func DeserializeTree(data []byte) (Node, error) {
	tr := treeReader{data: data}
	root, err := tr.readNode(0)
	if err != nil {
		return nil, err
	}
	if extra := len(data) - tr.pos; extra != 0 {
		return nil, fmt.Errorf("%w: %d unused bytes after tree", ErrMalformedContainer, extra)
	}
	return root, nil
}

type treeReader struct {
	data []byte
	pos  int
	seen [NumSymbols]bool
}

func (tr *treeReader) readByte() (byte, error) {
	if tr.pos >= len(tr.data) {
		return 0, fmt.Errorf("%w: need byte at offset %d, have %d bytes", ErrTruncatedTreeData, tr.pos, len(tr.data))
	}
	b := tr.data[tr.pos]
	tr.pos++
	return b, nil
}

func (tr *treeReader) readNode(depth int) (Node, error) {
	offset := tr.pos
	tag, err := tr.readByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case tagLeaf:
		b, err := tr.readByte()
		if err != nil {
			return nil, err
		}
		symbol := Symbol(b)
		if tr.seen[symbol] {
			return nil, fmt.Errorf("%w: symbol %v appears twice in tree", ErrMalformedContainer, symbol)
		}
		tr.seen[symbol] = true
		return &Leaf{Symbol: symbol}, nil

	case tagInternal:
		if depth >= maxTreeDepth {
			return nil, fmt.Errorf("%w: tree deeper than %d levels at offset %d", ErrMalformedContainer, maxTreeDepth, offset)
		}
		left, err := tr.readNode(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := tr.readNode(depth + 1)
		if err != nil {
			return nil, err
		}
		return &Internal{Left: left, Right: right}, nil

	default:
		return nil, fmt.Errorf("%w: %#02x at offset %d", ErrInvalidTag, tag, offset)
	}
}
