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

// executeInstructionAt decodes and dispatches the instruction stored
// at fetchAddr against m's current register state, returning its
// cycle cost and mnemonic. It does not fetch from or advance m.PC —
// callers (Step, and opXEC recursing into it) are responsible for
// whatever PC bookkeeping their caller contract requires.
func executeInstructionAt(m *Machine, fetchAddr uint16, depth int) (cost uint64, name string) {
	instr := m.memory.Read(fetchAddr)
	op := DecodeOpcode(instr)
	ea := EffectiveAddress(m, instr)

	entry := opcodeTable[op]
	if entry == nil {
		m.Halted = true
		logDecodeError(op, fetchAddr)
		return 5, "???"
	}

	return entry.exec(m, instr, ea, depth), entry.name
}

// Step fetches the instruction at PC, advances PC, decodes and
// dispatches it, and returns the cycle cost charged to Cycles. When
// the machine is halted, Step does nothing and returns 0.
func Step(m *Machine) uint64 {
	if m.Halted {
		return 0
	}

	pc := m.PC
	m.PC = (pc + 1) & AddressMask

	cost, name := executeInstructionAt(m, pc, 0)
	m.Cycles += cost
	logTrace(m, pc, name, cost)

	return cost
}

// Run steps m until it halts or, when budget is nonzero, until the
// cumulative cost charged during this call reaches budget. It returns
// the cumulative cost charged during this call. A budget of 0 means
// unbounded.
func Run(m *Machine, budget uint64) uint64 {
	var spent uint64
	for !m.Halted {
		if budget != 0 && spent >= budget {
			break
		}
		spent += Step(m)
	}
	return spent
}
