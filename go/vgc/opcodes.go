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

package vgc

// maxXECDepth bounds XEC's recursive self-execution. A chain longer
// than this is treated as a fatal decode error rather than blowing the
// host stack.
const maxXECDepth = 64

func opHLT(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.Halted = true
	// re-fetch the same HLT word on the next step.
	m.PC = (m.PC - 1) & AddressMask
	return 5
}

func opNOP(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	return 5
}

func opLDA(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.A = m.memory.Read(ea)
	return 10
}

func opLDB(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.B = m.memory.Read(ea)
	return 10
}

func opSTA(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.memory.Write(ea, m.A)
	return 10
}

func opSTB(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.memory.Write(ea, m.B)
	return 10
}

// addSub performs a signed add (or, if sub is true, subtract) of a and
// b, truncating the 24-bit-wide result and reporting whether its
// magnitude exceeded the 23-bit signed range.
func addSub(a, b int64, sub bool) (word uint32, overflow bool) {
	var sum int64
	if sub {
		sum = a - b
	} else {
		sum = a + b
	}

	neg := sum < 0
	mag := sum
	if neg {
		mag = -mag
	}

	overflow = uint64(mag) > uint64(MagnitudeMask)
	word = withSign(uint32(mag)&MagnitudeMask, neg)
	return
}

func opADD(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	word, overflow := addSub(int64(ToSigned(m.A)), int64(ToSigned(m.memory.Read(ea))), false)
	m.A = word
	if overflow {
		m.Overflow = true
	}
	return 10
}

func opSUB(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	word, overflow := addSub(int64(ToSigned(m.A)), int64(ToSigned(m.memory.Read(ea))), true)
	m.A = word
	if overflow {
		m.Overflow = true
	}
	return 10
}

func opANA(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.A = Mask24(m.A & m.memory.Read(ea))
	return 10
}

func opORA(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.A = Mask24(m.A | m.memory.Read(ea))
	return 10
}

func opERA(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.A = Mask24(m.A ^ m.memory.Read(ea))
	return 10
}

// MPY multiplies the magnitudes of B and M as a 46-bit unsigned
// product, splitting the high 23 bits into A and the low 23 into B.
// The combined sign is applied to both halves, suppressed when the
// product is zero so positive operands never yield a negative zero.
func opMPY(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	operand := m.memory.Read(ea)
	bm := uint64(Magnitude(m.B))
	ym := uint64(Magnitude(operand))
	product := bm * ym

	sign := (IsNegative(m.B) != IsNegative(operand)) && product != 0

	aMag := uint32((product >> 23) & uint64(MagnitudeMask))
	bMag := uint32(product & uint64(MagnitudeMask))

	m.A = signWord(aMag, sign)
	m.B = signWord(bMag, sign)
	return 28
}

// DIV divides the 46-bit dividend (A:B) by the magnitude of M. An
// improper divide — one whose quotient would not fit in 23 bits —
// leaves A and B untouched and sets Overflow instead.
func opDIV(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	am := uint64(Magnitude(m.A))
	dm := uint64(Magnitude(m.memory.Read(ea)))

	if dm == 0 || am >= dm {
		m.Overflow = true
		return 44
	}

	dividend := (am << 23) | uint64(Magnitude(m.B))
	q := dividend / dm
	r := dividend % dm

	qSign := IsNegative(m.A) != IsNegative(m.memory.Read(ea))
	rSign := IsNegative(m.A)

	m.B = withSign(uint32(q)&MagnitudeMask, qSign)
	m.A = withSign(uint32(r)&MagnitudeMask, rSign)
	return 44
}

func opJMP(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.PC = ea
	return 5
}

func opJPL(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	if !IsNegative(m.A) && Magnitude(m.A) != 0 {
		m.PC = ea
	}
	return 6
}

func opJMI(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	if IsNegative(m.A) {
		m.PC = ea
	}
	return 6
}

func opJZE(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	if Magnitude(m.A) == 0 {
		m.PC = ea
	}
	return 6
}

func opJNZ(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	if Magnitude(m.A) != 0 {
		m.PC = ea
	}
	return 6
}

func opJSL(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.memory.Write(ea, uint32(m.PC))
	m.PC = (ea + 1) & AddressMask
	return 10
}

func opSKG(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	if ToSigned(m.A) > ToSigned(m.memory.Read(ea)) {
		m.PC = (m.PC + 1) & AddressMask
	}
	return 10
}

func opSKN(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	if Mask24(m.A) != m.memory.Read(ea) {
		m.PC = (m.PC + 1) & AddressMask
	}
	return 10
}

func opTAB(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.B = m.A
	return 5
}

func opIAB(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.A, m.B = m.B, m.A
	return 10
}

func opLDX(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	if idx := DecodeIndex(instr); idx > 0 {
		m.setIndex(idx, uint16(m.memory.Read(ea))&0x7FFF)
	}
	return 5
}

func opSIX(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	idx := DecodeIndex(instr)
	m.memory.Write(ea, uint32(m.X[idx]))
	return 10
}

func opARS(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	count := uint64(ea & 0x1F)
	mag := Magnitude(m.A) >> count
	m.A = withSign(mag, IsNegative(m.A))
	return 5 + count
}

func opALS(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	count := uint64(ea & 0x1F)
	mag := (Magnitude(m.A) << count) & MagnitudeMask
	m.A = withSign(mag, IsNegative(m.A))
	return 5 + count
}

// opXEC implements the recursive execute-indirect contract: PC is
// advanced past the XEC itself before the instruction at ea runs, so
// any PC change that instruction makes (a jump, another XEC, ...)
// stands as the machine's next fetch address.
func opXEC(m *Machine, instr uint32, ea uint16, depth int) uint64 {
	m.PC = (ea + 1) & AddressMask

	if depth+1 > maxXECDepth {
		m.Halted = true
		logRecursionLimit(ea)
		return 5
	}

	inner, _ := executeInstructionAt(m, ea, depth+1)
	return 5 + inner
}
