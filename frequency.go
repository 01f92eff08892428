package huffman

import (
	"strconv"
	"strings"
)

// FrequencyTable holds the number of occurrences of each Symbol in some
// input.  The zero value is an empty table, ready to use.
type FrequencyTable struct {
	counts   [NumSymbols]uint64
	distinct int
	total    uint64
}

// CountFrequencies scans data once and returns its FrequencyTable.
func CountFrequencies(data []byte) *FrequencyTable {
	ft := new(FrequencyTable)
	for _, b := range data {
		ft.Add(Symbol(b), 1)
	}
	return ft
}

// Add records n more occurrences of symbol.
func (ft *FrequencyTable) Add(symbol Symbol, n uint64) {
	if n == 0 {
		return
	}
	if ft.counts[symbol] == 0 {
		ft.distinct++
	}
	ft.counts[symbol] += n
	ft.total += n
}

// Count returns the number of occurrences of symbol.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols with a non-zero count.
func (ft *FrequencyTable) Len() int {
	return ft.distinct
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.distinct)
	for i := 0; i < NumSymbols; i++ {
		if ft.counts[i] != 0 {
			out = append(out, Symbol(i))
		}
	}
	return out
}

// String returns a programmer-readable representation of this table.
func (ft *FrequencyTable) String() string {
	var buf strings.Builder
	buf.WriteString("FrequencyTable{")
	for index, symbol := range ft.Symbols() {
		if index > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(symbol.String())
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatUint(ft.counts[symbol], 10))
	}
	buf.WriteByte('}')
	return buf.String()
}
