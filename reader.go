package huffio

import (
	"errors"
	"io"
)

// ErrReaderDone is returned when a Reader is fed more input after it
// has already decoded the EndOfStream code.
var ErrReaderDone = errors.New("huffio: reader already reached end of stream")

// Reader unpacks a Huffman-coded bitstream one input byte at a time,
// writing each decoded byte to its sink as a leaf is reached.
type Reader struct {
	w    io.Writer
	root *Tree
	cur  *Tree
	done bool
	buf  [1]byte
}

// NewReader returns a Reader that walks tree and writes decoded bytes
// to w.  The Reader owns its traversal position; the tree itself is
// only read.
func NewReader(w io.Writer, tree *Tree) *Reader {
	return &Reader{w: w, root: tree, cur: tree}
}

// Feed consumes the 8 bits of b, least significant first, descending
// left on 0 and right on 1.  Each byte-valued leaf is written to the
// sink and the walk restarts at the root without consuming a bit.
//
// Feed returns false once the EndOfStream leaf is reached: the
// remaining bits of b are padding, and no further bytes may be fed.
// It performs at most one sink write per decoded byte.
//
func (r *Reader) Feed(b byte) (bool, error) {
	if r.done {
		return false, ErrReaderDone
	}
	for used := 0; ; {
		if r.cur.isLeaf() {
			if r.cur.symbol == EndOfStream {
				r.done = true
				return false, nil
			}
			r.buf[0] = byte(r.cur.symbol)
			if _, err := r.w.Write(r.buf[:]); err != nil {
				return false, err
			}
			r.cur = r.root
			continue
		}
		if used == 8 {
			return true, nil
		}
		if b&1 == 0 {
			r.cur = r.cur.left
		} else {
			r.cur = r.cur.right
		}
		b >>= 1
		used++
	}
}
