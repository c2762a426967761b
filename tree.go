package huffio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman code tree over the byte alphabet plus the
// EndOfStream sentinel.  A node is either a branch with two children or
// a leaf holding a Symbol.  Trees are built once per session and never
// mutated afterward; Writer and Reader only walk them.
type Tree struct {
	left   *Tree
	right  *Tree
	symbol Symbol
}

func (t *Tree) isLeaf() bool {
	return t.left == nil
}

// NewTree builds the code tree for a Frequencies table.  The queue is
// seeded with one entry per pair, in table order, plus a weight-0 entry
// for EndOfStream; then the two lowest-weight entries are repeatedly
// merged, the first popped becoming the left child, until a single root
// remains.
//
// The construction depends only on the table contents, so an encoder
// and a decoder holding equal tables always derive structurally
// identical trees, which is what lets the bitstream omit the tree.
//
func NewTree(freqs *Frequencies) *Tree {
	var q Queue[uint32, *Tree]
	for _, pair := range freqs.pairs {
		q.Insert(uint32(pair.Count), &Tree{symbol: Symbol(pair.Value)})
	}
	q.Insert(0, &Tree{symbol: EndOfStream})

	for {
		a, b, ok := q.RemoveTwo()
		if !ok {
			break
		}
		q.Insert(a.Weight+b.Weight, &Tree{left: a.Value, right: b.Value})
	}

	root, ok := q.Remove()
	assert.Assertf(ok, "merge loop drained the queue completely")
	return root.Value
}

// Equal reports whether two trees have identical structure with
// identical symbols at the leaves.
func (t *Tree) Equal(o *Tree) bool {
	type frame struct {
		a *Tree
		b *Tree
	}
	stack := []frame{{t, o}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case top.a == nil && top.b == nil:
			// ok
		case top.a == nil || top.b == nil:
			return false
		case top.a.isLeaf() != top.b.isLeaf():
			return false
		case top.a.isLeaf():
			if top.a.symbol != top.b.symbol {
				return false
			}
		default:
			stack = append(stack, frame{top.a.left, top.b.left}, frame{top.a.right, top.b.right})
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the tree's
// structure to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")

	type frame struct {
		node  *Tree
		depth int
	}

	// A nil node marks where a branch's closing brace belongs.
	stack := []frame{{t, 1}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < top.depth; i++ {
			buf.WriteByte('\t')
		}
		switch {
		case top.node == nil:
			buf.WriteString("}\n")
		case top.node.isLeaf():
			fmt.Fprintf(&buf, "Leaf(%s)\n", top.node.symbol)
		default:
			buf.WriteString("Branch{\n")
			stack = append(stack,
				frame{nil, top.depth},
				frame{top.node.right, top.depth + 1},
				frame{top.node.left, top.depth + 1})
		}
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
