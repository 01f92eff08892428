package huffman

// maxTreeDepth is the deepest an Internal node can sit in a tree whose
// leaves carry distinct Symbols.
const maxTreeDepth = NumSymbols - 1

// byteLen returns the number of bytes needed to hold the given number of
// bits.
func byteLen(bits uint64) uint64 {
	return (bits + 7) / 8
}
