// Package huffio implements a streaming static Huffman codec for byte
// data.  The encoder counts byte frequencies in one pass, transmits the
// scaled frequency table as a small header, then packs the data through
// a 128-bit accumulator into a dense bitstream.  The decoder rebuilds
// the identical code tree from the header alone and walks it one bit at
// a time; a zero-weight end-of-stream symbol terminates the bitstream,
// so no explicit length is transmitted.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffio
