// Package huffman implements a single-block Huffman compressor for byte
// strings.  The compressed form carries its own code tree, so no external
// metadata is needed to decompress it.
//
// The pipeline is:
//
//     bytes → FrequencyTable → BuildTree → {Codebook, SerializeTree}
//           → BitPacker → Container → bytes
//
// and the reverse for Decompress, which walks the rebuilt tree one bit at a
// time.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
