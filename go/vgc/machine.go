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

// Registers holds the guidance computer's register file: two
// accumulators, four index registers (X[0] is hardwired to zero), and
// the program counter.
type Registers struct {
	// A, B are the 24-bit accumulators.
	A, B uint32
	// X holds the four 15-bit index registers; X[0] must stay zero.
	X [4]uint16
	// PC is the 15-bit program counter.
	PC uint16
}

// reset zeroes every register.
func (r *Registers) reset() {
	*r = Registers{}
}

// setIndex writes val into X[idx], silently dropping writes to X[0].
func (r *Registers) setIndex(idx uint8, val uint16) {
	if idx == 0 {
		return
	}
	r.X[idx] = val & AddressMask
}

// Machine is the full guidance-computer state: registers, memory, and
// the flags and counters the execution engine maintains.
type Machine struct {
	Registers

	memory Memory

	// Overflow is sticky; only Init/Reset clears it.
	Overflow bool
	// Halted stops Step from doing anything further until cleared.
	Halted bool
	// InterruptEnabled is stored but never consulted by the core.
	InterruptEnabled bool
	// Cycles is a monotone count of accumulated per-instruction cost.
	Cycles uint64
}

// NewMachine returns a freshly initialized machine.
func NewMachine() *Machine {
	m := &Machine{}
	m.Init()
	return m
}

// Init zeroes all state, including memory.
func (m *Machine) Init() {
	m.Registers.reset()
	m.memory.Reset()
	m.Overflow = false
	m.Halted = false
	m.InterruptEnabled = false
	m.Cycles = 0
}

// Reset zeroes registers and flags but preserves memory.
func (m *Machine) Reset() {
	m.Registers.reset()
	m.Overflow = false
	m.Halted = false
	m.InterruptEnabled = false
	m.Cycles = 0
}

// Read returns the word at addr, masked to 15 bits of address and 24
// bits of value.
func (m *Machine) Read(addr uint16) uint32 {
	return m.memory.Read(addr)
}

// Write stores word at addr.
func (m *Machine) Write(addr uint16, word uint32) {
	m.memory.Write(addr, word)
}
