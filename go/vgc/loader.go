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

import (
	"errors"
	"io"
)

// ErrNoReader is returned by LoadImage when passed a nil reader.
var ErrNoReader = errors.New("vgc: nil image reader")

// LoadImage reads a flat sequence of 3-byte big-endian words from r
// and writes word N to memory[N] for N = 0, 1, ..., stopping at
// end-of-input or when N reaches MemorySize. It does not touch PC or
// any register; callers that need a nonzero entry point set PC
// themselves after loading.
func LoadImage(m *Machine, r io.Reader) error {
	if r == nil {
		return ErrNoReader
	}

	var buf [3]byte
	for n := 0; n < MemorySize; n++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return err
		}
		word := uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
		m.memory.Write(uint16(n), word)
	}

	return nil
}
