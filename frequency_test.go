package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountFrequencies(t *testing.T) {
	ft := CountFrequencies([]byte("aaaab"))
	require.Equal(t, uint64(4), ft.Count('a'))
	require.Equal(t, uint64(1), ft.Count('b'))
	require.Equal(t, uint64(0), ft.Count('c'))
	require.Equal(t, 2, ft.Len())
	require.Equal(t, uint64(5), ft.Total())
	require.Equal(t, []Symbol{'a', 'b'}, ft.Symbols())
	require.Equal(t, "FrequencyTable{'a':4, 'b':1}", ft.String())
}

func TestCountFrequencies_Empty(t *testing.T) {
	ft := CountFrequencies(nil)
	require.Equal(t, 0, ft.Len())
	require.Equal(t, uint64(0), ft.Total())
	require.Empty(t, ft.Symbols())
	require.Equal(t, "FrequencyTable{}", ft.String())
}

func TestFrequencyTable_TotalMatchesLength(t *testing.T) {
	data := make([]byte, 0, 3*NumSymbols)
	for i := 0; i < 3*NumSymbols; i++ {
		data = append(data, byte(i*7))
	}
	ft := CountFrequencies(data)
	require.Equal(t, uint64(len(data)), ft.Total())

	var sum uint64
	for _, symbol := range ft.Symbols() {
		sum += ft.Count(symbol)
	}
	require.Equal(t, ft.Total(), sum)
}

func TestFrequencyTable_Add(t *testing.T) {
	var ft FrequencyTable
	ft.Add(0xff, 0)
	require.Equal(t, 0, ft.Len())
	ft.Add(0xff, 3)
	ft.Add(0xff, 2)
	require.Equal(t, 1, ft.Len())
	require.Equal(t, uint64(5), ft.Count(0xff))
	require.Equal(t, "FrequencyTable{'\\u00ff':5}", ft.String())
}
