package huffio

import (
	"encoding/binary"
	"errors"
	"io"
	"sort"
)

// ErrEmptyInput is returned by CountBytes when the source yields no
// bytes at all.  The scaling step divides by the maximum observed
// count, so an empty source has no meaningful frequency table.
var ErrEmptyInput = errors.New("huffio: cannot build a frequency table from an empty source")

// FreqPair associates a byte value with its scaled occurrence count.
type FreqPair struct {
	Value byte
	Count byte
}

// Frequencies is the frequency table shared between encoder and
// decoder.  It holds one pair per distinct byte value observed, sorted
// in descending order by scaled count with ties broken by ascending
// byte value, and it is immutable once built.
type Frequencies struct {
	pairs []FreqPair
}

// CountBytes builds a Frequencies table by counting every byte of src
// until io.EOF.  Raw counts are scaled into [0, 255] relative to the
// maximum observed count, so rare bytes may scale down to 0; they keep
// their table entries and merely end up with longer codes.
//
// The first read failure is propagated verbatim.  An empty source
// yields ErrEmptyInput.
//
func CountBytes(src io.ByteReader) (*Frequencies, error) {
	var counts [256]uint64
	var total uint64
	for {
		b, err := src.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		counts[b]++
		total++
	}
	if total == 0 {
		return nil, ErrEmptyInput
	}

	var max uint64
	for _, count := range counts {
		if count > max {
			max = count
		}
	}

	pairs := make([]FreqPair, 0, 256)
	for value := 0; value < 256; value++ {
		count := counts[value]
		if count == 0 {
			continue
		}
		pairs = append(pairs, FreqPair{
			Value: byte(value),
			Count: byte(count * 255 / max),
		})
	}
	byCount(pairs).Sort()
	return &Frequencies{pairs: pairs}, nil
}

// NumPairs returns the number of (value, scaled count) pairs in the
// table.
func (f *Frequencies) NumPairs() int {
	return len(f.pairs)
}

// WriteTo serializes the table: a 4-byte big-endian pair count, then
// for each pair the byte value followed by its scaled count.
func (f *Frequencies) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 4+2*len(f.pairs))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(f.pairs)))
	i := 4
	for _, pair := range f.pairs {
		buf[i] = pair.Value
		buf[i+1] = pair.Count
		i += 2
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadFrequencies deserializes a table written by WriteTo.  A source
// that ends before supplying every promised pair yields
// io.ErrUnexpectedEOF.
func ReadFrequencies(r io.Reader) (*Frequencies, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, err
	}
	numPairs := binary.BigEndian.Uint32(head[:])

	buf := make([]byte, 2*uint64(numPairs))
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}

	pairs := make([]FreqPair, numPairs)
	for i := range pairs {
		pairs[i] = FreqPair{Value: buf[2*i], Count: buf[2*i+1]}
	}
	return &Frequencies{pairs: pairs}, nil
}

var _ io.WriterTo = (*Frequencies)(nil)

// type byCount {{{

type byCount []FreqPair

func (list byCount) Len() int {
	return len(list)
}

func (list byCount) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCount) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Value < b.Value
}

func (list byCount) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = byCount(nil)

// }}}
