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

// instruction pairs a mnemonic (used only for diagnostics and trace
// logging, never for disassembly) with the function that performs its
// effect and returns the total cycle cost, including its base cost.
type instruction struct {
	name string
	exec func(m *Machine, instr uint32, ea uint16, depth int) uint64
}

// opcodeTable is indexed by the 6-bit opcode field; a nil entry is an
// unimplemented opcode and is a decode error.
var opcodeTable = newOpcodeTable()

func newOpcodeTable() [64]*instruction {
	var t [64]*instruction

	set := func(octal uint8, name string, exec func(m *Machine, instr uint32, ea uint16, depth int) uint64) {
		t[octal] = &instruction{name: name, exec: exec}
	}

	set(000, "HLT", opHLT)
	set(002, "XEC", opXEC)
	set(003, "STB", opSTB)
	set(005, "STA", opSTA)
	set(010, "ADD", opADD)
	set(011, "SUB", opSUB)
	set(012, "SKG", opSKG)
	set(013, "SKN", opSKN)
	set(015, "ANA", opANA)
	set(016, "ORA", opORA)
	set(017, "ERA", opERA)
	set(023, "LDB", opLDB)
	set(024, "LDA", opLDA)
	set(027, "JSL", opJSL)
	set(034, "MPY", opMPY)
	set(035, "DIV", opDIV)
	set(040, "ARS", opARS)
	set(041, "ALS", opALS)
	set(055, "TAB", opTAB)
	set(056, "LDX", opLDX)
	set(057, "IAB", opIAB)
	set(066, "SIX", opSIX)
	set(070, "JPL", opJPL)
	set(071, "JZE", opJZE)
	set(072, "JMI", opJMI)
	set(073, "JNZ", opJNZ)
	set(074, "JMP", opJMP)
	set(077, "NOP", opNOP)

	return t
}
