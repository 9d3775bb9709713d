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

// Memory is the flat 32768-word core store, addressed modulo its size.
type Memory [MemorySize]uint32

// Reset zeroes every word.
func (m *Memory) Reset() {
	for i := range m {
		m[i] = 0
	}
}

// Read returns the word at addr, masked to 15 bits of address and 24
// bits of value.
func (m *Memory) Read(addr uint16) uint32 {
	return Mask24(m[addr&AddressMask])
}

// Write stores word at addr, masking both to their native widths.
func (m *Memory) Write(addr uint16, word uint32) {
	m[addr&AddressMask] = Mask24(word)
}
