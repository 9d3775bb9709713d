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

import "fmt"

// Logger is the sink diagnostics and (optionally) step traces are
// written to. Callers embedding the core in a larger program supply
// their own implementation via SetLogger; by default nothing is
// logged.
type Logger interface {
	Log(msg string)
}

type defaultLogger struct{}

func (l *defaultLogger) Log(msg string) {}

var (
	defaultLoggerImpl = &defaultLogger{}
	logger            Logger = defaultLoggerImpl

	logEnable = false
)

// SetLogger installs impl as the diagnostic sink. Passing nil restores
// the no-op default.
func SetLogger(impl Logger) {
	if impl == nil {
		logger = defaultLoggerImpl
	} else {
		logger = impl
	}
}

// SetLogEnable toggles per-step execution tracing. Decode-error
// diagnostics are always emitted regardless of this setting.
func SetLogEnable(enable bool) {
	logEnable = enable
}

// logDecodeError reports an unknown opcode fetched at pc.
func logDecodeError(opcode uint8, pc uint16) {
	logger.Log(fmt.Sprintf("decode error: unimplemented opcode %02o at PC=%05o", opcode, pc))
}

// logRecursionLimit reports an XEC chain deeper than maxXECDepth,
// fetched at addr, which this implementation treats as a fatal decode
// error rather than recursing further.
func logRecursionLimit(addr uint16) {
	logger.Log(fmt.Sprintf("decode error: XEC recursion limit exceeded at %05o", addr))
}

// logTrace reports the state of m immediately after executing an
// instruction fetched at pc, when step tracing is enabled.
func logTrace(m *Machine, pc uint16, name string, cost uint64) {
	if !logEnable {
		return
	}
	o := '.'
	if m.Overflow {
		o = 'O'
	}
	logger.Log(fmt.Sprintf("%10d PC:%05o %-3s A:%08o B:%08o X1:%05o X2:%05o X3:%05o %c",
		m.Cycles, pc, name, m.A, m.B, m.X[1], m.X[2], m.X[3], o))
}
