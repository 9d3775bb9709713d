// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package vgc emulates the 24-bit sign-magnitude guidance computer used
// aboard the Viking Mars landers.
package vgc

const (
	// WordBits is the width of a machine word.
	WordBits = 24
	// WordMask masks a value down to 24 bits.
	WordMask uint32 = 1<<WordBits - 1
	// SignBit is bit 23, the sign bit of a 24-bit sign-magnitude word.
	SignBit uint32 = 1 << 23
	// MagnitudeMask isolates the 23 magnitude bits of a word.
	MagnitudeMask uint32 = SignBit - 1

	// AddressBits is the width of a memory address / index register.
	AddressBits = 15
	// AddressMask masks a value down to 15 bits.
	AddressMask uint16 = 1<<AddressBits - 1

	// MemorySize is the number of addressable words.
	MemorySize = 1 << AddressBits
)

// Mask24 truncates w to 24 bits. Every word written to a register or
// memory cell must pass through this so the high bits never leak.
func Mask24(w uint32) uint32 {
	return w & WordMask
}

// MaskAddr truncates addr to 15 bits, the addressable range.
func MaskAddr(addr uint32) uint16 {
	return uint16(addr) & AddressMask
}

// IsNegative reports whether w's sign bit is set.
func IsNegative(w uint32) bool {
	return Mask24(w)&SignBit != 0
}

// Magnitude extracts the 23-bit magnitude of w, discarding the sign.
func Magnitude(w uint32) uint32 {
	return Mask24(w) & MagnitudeMask
}

// ToSigned converts a 24-bit sign-magnitude word to an ordinary signed
// integer. Both +0 and -0 map to 0.
func ToSigned(w uint32) int32 {
	m := int32(Magnitude(w))
	if IsNegative(w) {
		return -m
	}
	return m
}

// FromSigned converts an ordinary signed integer to a 24-bit
// sign-magnitude word. Callers must ensure |v| < 2^23 except where
// overflow is explicitly handled by the caller.
func FromSigned(v int32) uint32 {
	if v < 0 {
		return SignBit | (uint32(-v) & MagnitudeMask)
	}
	return uint32(v) & MagnitudeMask
}

// withSign applies sign (true = negative) to a nonnegative magnitude,
// producing a sign-magnitude word. If mag is zero, sign is suppressed
// so arithmetic never manufactures a negative zero. Use this when the
// zero/nonzero test applies to this value alone (ADD/SUB results, a
// DIV quotient or remainder).
func withSign(mag uint32, negative bool) uint32 {
	mag &= MagnitudeMask
	if mag == 0 {
		return 0
	}
	return signWord(mag, negative)
}

// signWord applies sign unconditionally to mag, without suppressing it
// for a zero magnitude. Use this when the nonzero test that decides
// whether a sign applies at all has already been made against some
// other quantity (MPY applies its sign based on the 46-bit product as
// a whole, not on each split half independently).
func signWord(mag uint32, negative bool) uint32 {
	mag &= MagnitudeMask
	if negative {
		return SignBit | mag
	}
	return mag
}
