package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	huffman "github.com/chronos-tachyon/huffpack"
)

func TestParseArgs(t *testing.T) {
	type testRow struct {
		name   string
		args   []string
		expect options
		fail   bool
	}

	testData := [...]testRow{
		{name: "default", args: nil, expect: options{mode: CompressMode}},
		{name: "compress", args: []string{"-c", "in.txt"}, expect: options{mode: CompressMode, input: "in.txt"}},
		{name: "decompress", args: []string{"-d", "-o", "out.txt", "in.huff"}, expect: options{mode: DecompressMode, input: "in.huff", output: "out.txt"}},
		{name: "flags", args: []string{"-t", "-p", "-v"}, expect: options{mode: CompressMode, verify: true, printTree: true, verbose: true}},
		{name: "both-modes", args: []string{"-c", "-d"}, fail: true},
		{name: "two-inputs", args: []string{"a", "b"}, fail: true},
		{name: "unknown-flag", args: []string{"-x"}, fail: true},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			opts, err := parseArgs(row.args, io.Discard)
			if row.fail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, row.expect, opts)
		})
	}
}

func TestRun_Stdio(t *testing.T) {
	input := "the quick brown fox jumped over the lazy dog"

	var compressed, stderr bytes.Buffer
	err := run(options{mode: CompressMode, verify: true}, strings.NewReader(input), &compressed, &stderr)
	require.NoError(t, err)
	require.Empty(t, stderr.String())

	var plain bytes.Buffer
	err = run(options{mode: DecompressMode}, bytes.NewReader(compressed.Bytes()), &plain, &stderr)
	require.NoError(t, err)
	require.Equal(t, input, plain.String())
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	packed := filepath.Join(dir, "in.huff")
	unpacked := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(src, []byte("aaaab"), 0o644))

	var stderr bytes.Buffer
	err := run(options{mode: CompressMode, input: src, output: packed, verbose: true}, nil, io.Discard, &stderr)
	require.NoError(t, err)
	require.Contains(t, stderr.String(), "5 -> 18 bytes")
	require.Contains(t, stderr.String(), "xxh64 ")

	blob, err := os.ReadFile(packed)
	require.NoError(t, err)
	require.Equal(t, []byte{0x08}, blob[len(blob)-1:])

	stderr.Reset()
	err = run(options{mode: DecompressMode, input: packed, output: unpacked, printTree: true}, nil, io.Discard, &stderr)
	require.NoError(t, err)
	require.Equal(t, "Internal(0)\n\t0: Leaf('a', 0)\n\t1: Leaf('b', 0)\n", stderr.String())

	out, err := os.ReadFile(unpacked)
	require.NoError(t, err)
	require.Equal(t, "aaaab", string(out))
}

func TestRun_Errors(t *testing.T) {
	err := run(options{mode: CompressMode}, strings.NewReader(""), io.Discard, io.Discard)
	require.ErrorIs(t, err, huffman.ErrEmptyAlphabet)

	err = run(options{mode: DecompressMode}, strings.NewReader("short"), io.Discard, io.Discard)
	require.ErrorIs(t, err, huffman.ErrMalformedContainer)

	err = run(options{mode: CompressMode, input: filepath.Join(t.TempDir(), "missing")}, nil, io.Discard, io.Discard)
	require.ErrorIs(t, err, os.ErrNotExist)
}
