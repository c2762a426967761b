package huffio

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits assigned to a Symbol.  The least
// significant bit of Lo is the first bit; bit 64 and up live in Hi.
// Codes are bounded by the accumulator width, so 128 bits suffice.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Lo and Hi hold the actual values of the bits.
	Lo uint64
	Hi uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, lo uint64, hi uint64) Code {
	return Code{Size: size, Lo: lo, Hi: hi}
}

// WithBit returns a copy of this Code with the bit at the given
// position set.
func (hc Code) WithBit(position byte) Code {
	if position < 64 {
		hc.Lo |= uint64(1) << position
	} else {
		hc.Hi |= uint64(1) << (position - 64)
	}
	return hc
}

// String returns the string representation of this Code, most
// significant bit first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	if hc.Size <= 64 {
		format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
		return strconv.Quote(fmt.Sprintf(format, hc.Lo))
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size-64), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Hi) + fmt.Sprintf("%064b", hc.Lo))
}

var _ fmt.Stringer = Code{}
