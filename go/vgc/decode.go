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

// Instruction word layout:
//
//	bit:  23      18 17  16  15 14                     0
//	     [ opcode ][ I ][  X  ][        address        ]

// DecodeOpcode extracts the 6-bit opcode, bits 23..18.
func DecodeOpcode(instr uint32) uint8 {
	return uint8((instr >> 18) & 0x3F)
}

// DecodeIndirect extracts the indirect flag, bit 17.
func DecodeIndirect(instr uint32) bool {
	return (instr>>17)&1 != 0
}

// DecodeIndex extracts the 2-bit index register selector, bits 16..15.
func DecodeIndex(instr uint32) uint8 {
	return uint8((instr >> 15) & 0x3)
}

// DecodeAddress extracts the 15-bit address field, bits 14..0.
func DecodeAddress(instr uint32) uint16 {
	return uint16(instr) & AddressMask
}

// EffectiveAddress computes the effective address of instr against the
// given machine: indexing (if the index selector is nonzero) followed
// by one level of indirection (if the indirect flag is set).
func EffectiveAddress(m *Machine, instr uint32) uint16 {
	addr := DecodeAddress(instr)

	if idx := DecodeIndex(instr); idx != 0 {
		addr = (addr + m.X[idx]) & AddressMask
	}

	if DecodeIndirect(instr) {
		addr = MaskAddr(uint32(m.memory.Read(addr)))
	}

	return addr
}
