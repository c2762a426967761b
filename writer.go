package huffio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// scratchBits is the width of the bit accumulator.  Scaled weights
// keep real code lengths far below this bound; see NewWriter.
const scratchBits = 128

// ErrWriterClosed is returned when a Writer is used after Close.
var ErrWriterClosed = errors.New("huffio: writer is closed")

// Writer packs bytes into a Huffman-coded bitstream.  Codes accumulate
// in a 128-bit scratch register; each time the register fills, one
// 16-byte little-endian block is written to the sink, least significant
// byte first.  Close writes the EndOfStream code and flushes the final
// partial block trimmed to whole bytes.
type Writer struct {
	w      io.Writer
	codes  [AlphabetSize]Code
	lo     uint64
	hi     uint64
	shift  uint
	closed bool
	buf    [scratchBits / 8]byte
}

// NewWriter derives the code table from tree and returns a Writer that
// emits packed blocks to w.  The tree is walked with an explicit stack:
// descending left contributes bit 0 at the current depth, descending
// right contributes bit 1, and each leaf's accumulated (bits, depth)
// becomes its symbol's Code.
func NewWriter(w io.Writer, tree *Tree) *Writer {
	hw := &Writer{w: w}

	type frame struct {
		node *Tree
		code Code
	}
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{node: tree})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.isLeaf() {
			hw.codes[top.node.symbol] = top.code
			continue
		}
		assert.Assertf(top.code.Size < scratchBits, "tree depth %d overflows the %d-bit accumulator", top.code.Size, scratchBits)
		left := top.code
		left.Size++
		right := top.code.WithBit(top.code.Size)
		right.Size++
		stack = append(stack, frame{top.node.left, left}, frame{top.node.right, right})
	}
	return hw
}

// WriteByte appends the code for b to the bitstream.  It performs at
// most one write to the sink, and fails only if that write fails.  The
// byte must have appeared in the frequency table the tree was built
// from.
func (hw *Writer) WriteByte(b byte) error {
	if hw.closed {
		return ErrWriterClosed
	}
	hc := hw.codes[b]
	assert.Assertf(hc.Size != 0, "byte %d has no code in this tree", b)
	return hw.writeCode(hc)
}

// Close appends the EndOfStream code, flushes the remaining scratch
// bits as the minimum number of whole bytes, and marks the Writer
// unusable.
func (hw *Writer) Close() error {
	if hw.closed {
		return ErrWriterClosed
	}
	hw.closed = true
	if err := hw.writeCode(hw.codes[EndOfStream]); err != nil {
		return err
	}
	n := (hw.shift + 7) / 8
	if n == 0 {
		return nil
	}
	binary.LittleEndian.PutUint64(hw.buf[0:8], hw.lo)
	binary.LittleEndian.PutUint64(hw.buf[8:16], hw.hi)
	hw.lo, hw.hi, hw.shift = 0, 0, 0
	_, err := hw.w.Write(hw.buf[:n])
	return err
}

func (hw *Writer) writeCode(hc Code) error {
	// OR the code into scratch at the current bit offset.  Bits that
	// fall beyond the register are recovered from hc after the flush.
	s := hw.shift
	if s < 64 {
		hw.lo |= hc.Lo << s
		hw.hi |= hc.Hi << s
		if s != 0 {
			hw.hi |= hc.Lo >> (64 - s)
		}
	} else {
		hw.hi |= hc.Lo << (s - 64)
	}
	hw.shift += uint(hc.Size)
	if hw.shift < scratchBits {
		return nil
	}

	binary.LittleEndian.PutUint64(hw.buf[0:8], hw.lo)
	binary.LittleEndian.PutUint64(hw.buf[8:16], hw.hi)

	// The first (scratchBits - s) bits of hc went out with this block;
	// whatever is left of the code becomes the new scratch contents.
	drop := scratchBits - s
	if drop < 64 {
		hw.lo = hc.Lo>>drop | hc.Hi<<(64-drop)
		hw.hi = hc.Hi >> drop
	} else {
		hw.lo = hc.Hi >> (drop - 64)
		hw.hi = 0
	}
	hw.shift -= scratchBits

	_, err := hw.w.Write(hw.buf[:])
	return err
}

// Code returns the code assigned to the given symbol.  Symbols absent
// from the frequency table have a zero-size Code.
func (hw *Writer) Code(symbol Symbol) Code {
	return hw.codes[symbol]
}

// Dump writes a programmer-readable debugging dump of the Writer's code
// table to the given writer.
func (hw *Writer) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Writer{\n")
	for symbol := Symbol(0); symbol < AlphabetSize; symbol++ {
		hc := hw.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%s) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ io.ByteWriter = (*Writer)(nil)
