package huffman

import (
	"strconv"
)

// Symbol represents a symbol in the byte alphabet.
type Symbol byte

// NumSymbols is the number of distinct Symbols.
const NumSymbols = 256

// String returns the symbol as a quoted, ASCII-only character literal.
func (s Symbol) String() string {
	return strconv.QuoteRuneToASCII(rune(s))
}
