package huffio

import (
	"cmp"
	"sort"
)

// Pair is one (weight, value) entry of a Queue.
type Pair[K cmp.Ordered, V any] struct {
	Weight K
	Value  V
}

// Queue is a sequence of (weight, value) pairs kept sorted in
// descending order by weight, so the minimum weight is always at the
// tail.  It exists to drive the Huffman merge step, which repeatedly
// extracts the two lowest-weight entries.
//
// The zero value is an empty queue ready for use.
type Queue[K cmp.Ordered, V any] struct {
	pairs []Pair[K, V]
}

// Len returns the number of entries currently in the queue.
func (q *Queue[K, V]) Len() int {
	return len(q.pairs)
}

// Insert places (weight, value) at the position that keeps the queue
// sorted.  A new entry goes before all existing entries of equal
// weight, so equal weights come back out in insertion order.
func (q *Queue[K, V]) Insert(weight K, value V) {
	index := sort.Search(len(q.pairs), func(i int) bool {
		return q.pairs[i].Weight <= weight
	})
	q.pairs = append(q.pairs, Pair[K, V]{})
	copy(q.pairs[index+1:], q.pairs[index:])
	q.pairs[index] = Pair[K, V]{Weight: weight, Value: value}
}

// Remove pops and returns the lowest-weight entry, reporting false if
// the queue is empty.
func (q *Queue[K, V]) Remove() (Pair[K, V], bool) {
	last := len(q.pairs) - 1
	if last < 0 {
		return Pair[K, V]{}, false
	}
	pair := q.pairs[last]
	q.pairs[last] = Pair[K, V]{}
	q.pairs = q.pairs[:last]
	return pair, true
}

// RemoveTwo pops and returns the two lowest-weight entries, lowest
// first, reporting false if fewer than two remain.
func (q *Queue[K, V]) RemoveTwo() (Pair[K, V], Pair[K, V], bool) {
	if len(q.pairs) < 2 {
		return Pair[K, V]{}, Pair[K, V]{}, false
	}
	a, _ := q.Remove()
	b, _ := q.Remove()
	return a, b, true
}
