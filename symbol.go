package huffio

import (
	"strconv"
)

// Symbol represents a symbol in the coded alphabet: one of the 256
// possible byte values, or the EndOfStream sentinel.
type Symbol int32

// EndOfStream is the synthetic zero-weight symbol whose code, once
// decoded, signals that the bitstream is complete.
const EndOfStream = Symbol(256)

// AlphabetSize counts the byte values plus the sentinel.
const AlphabetSize = 257

// String returns the string representation of this Symbol.
func (s Symbol) String() string {
	if s == EndOfStream {
		return "EOS"
	}
	return strconv.FormatInt(int64(s), 10)
}
