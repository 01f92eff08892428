package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman code tree.  It is either a *Leaf or an
// *Internal.  A tree is never modified once built.
type Node interface {
	// Weight returns the total count of all leaves below this node.
	// Trees rebuilt by DeserializeTree have all weights set to 0.
	Weight() uint64

	isNode()
}

// Leaf is a terminal node, holding exactly one Symbol.
type Leaf struct {
	Symbol Symbol
	Count  uint64
}

// Weight returns the Leaf's count.
func (leaf *Leaf) Weight() uint64 {
	return leaf.Count
}

func (*Leaf) isNode() {}

// Internal is a branching node.  Both children are always present; the
// left child is reached with a 0 bit and the right child with a 1 bit.
type Internal struct {
	Sum   uint64
	Left  Node
	Right Node
}

// Weight returns the sum of the weights of both children.
func (node *Internal) Weight() uint64 {
	return node.Sum
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// BuildTree constructs a Huffman code tree from the given frequencies.
//
// Nodes of equal weight leave the priority queue in the order they entered
// it: leaves first, by ascending Symbol, then merged nodes in order of
// creation.  At each merge the first node popped becomes the right child and
// the second becomes the left child, so the output is fully determined by
// the frequencies.
//
// If only one Symbol is present, a synthetic sibling Leaf with a count of 0
// and the next Symbol value (wrapping from 255 to 0) is added, so that the
// lone Symbol still gets the 1-bit code "0".
//
func BuildTree(ft *FrequencyTable) (Node, error) {
	if ft == nil || ft.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]heapItem, 0, NumSymbols+1)}
	var seq uint32
	for _, symbol := range ft.Symbols() {
		h.list = append(h.list, heapItem{&Leaf{Symbol: symbol, Count: ft.Count(symbol)}, seq})
		seq++
	}
	if len(h.list) == 1 {
		lone := h.list[0].node.(*Leaf)
		h.list = append(h.list, heapItem{&Leaf{Symbol: lone.Symbol + 1}, seq})
		seq++
	}
	h.Init()

	// Step 2: pop the two lightest nodes, merge them, push the result back,
	// until only the root remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		sum := a.node.Weight() + b.node.Weight()
		assert.Assertf(sum >= a.node.Weight(), "weight overflow: %d + %d", a.node.Weight(), b.node.Weight())

		heap.Push(&h, heapItem{&Internal{Sum: sum, Left: b.node, Right: a.node}, seq})
		seq++
	}

	return heap.Pop(&h).(heapItem).node, nil
}

// DumpTree writes a programmer-readable rendering of the tree to the given
// writer.
func DumpTree(w io.Writer, root Node) (int64, error) {
	var buf bytes.Buffer
	dumpNode(&buf, root, 0, "")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n Node, depth int, label string) {
	buf.WriteString(strings.Repeat("\t", depth))
	buf.WriteString(label)
	switch x := n.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "Leaf(%v, %d)\n", x.Symbol, x.Count)
	case *Internal:
		fmt.Fprintf(buf, "Internal(%d)\n", x.Sum)
		dumpNode(buf, x.Left, depth+1, "0: ")
		dumpNode(buf, x.Right, depth+1, "1: ")
	default:
		fmt.Fprintf(buf, "%T\n", n)
	}
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node Node
	seq  uint32
}

type nodeHeap struct {
	list []heapItem
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
