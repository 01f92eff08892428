package huffman

import (
	"errors"
)

// Errors returned by this package.  They are usually wrapped with details
// about where the problem was found; test for them with errors.Is.
var (
	// ErrEmptyAlphabet is returned when there are no symbols to compress.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

	// ErrInvalidTag is returned when a serialized tree contains a node
	// tag other than 0 (internal) or 1 (leaf).
	ErrInvalidTag = errors.New("huffman: invalid tree tag")

	// ErrTruncatedTreeData is returned when a serialized tree ends in the
	// middle of a node.
	ErrTruncatedTreeData = errors.New("huffman: truncated tree data")

	// ErrInsufficientBytes is returned when a payload holds fewer bits
	// than its declared bit length.
	ErrInsufficientBytes = errors.New("huffman: insufficient payload bytes")

	// ErrMalformedContainer is returned when the container's length
	// fields disagree with its actual contents.
	ErrMalformedContainer = errors.New("huffman: malformed container")

	// ErrCorruptBitstream is returned when the payload bits do not decode
	// to exactly the declared number of symbols.
	ErrCorruptBitstream = errors.New("huffman: corrupt bitstream")

	// ErrInputTooLarge is returned when an input cannot be described by
	// the container's 32-bit length fields.
	ErrInputTooLarge = errors.New("huffman: input too large")
)
