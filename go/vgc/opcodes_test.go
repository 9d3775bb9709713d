package vgc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func runToHalt(t *testing.T, m *Machine) {
	t.Helper()
	const guard = 10000
	for i := 0; !m.Halted; i++ {
		if i >= guard {
			t.Fatalf("program did not halt within %d steps", guard)
		}
		Step(m)
	}
}

// Scenario 1: LDA/STA.
func TestScenarioLdaSta(t *testing.T) {
	m := NewMachine()
	m.Write(0, instr(024, false, 0, 0400)) // LDA 0400
	m.Write(1, instr(005, false, 0, 0401)) // STA 0401
	m.Write(2, instr(000, false, 0, 0))    // HLT
	m.Write(0400, 04531126)

	runToHalt(t, m)

	assert.EqualValues(t, 04531126, m.Read(0401))
	assert.EqualValues(t, 04531126, m.A)
}

// Scenario 2: ADD.
func TestScenarioAdd(t *testing.T) {
	m := NewMachine()
	m.Write(0, instr(024, false, 0, 0400)) // LDA 0400
	m.Write(1, instr(010, false, 0, 0401)) // ADD 0401
	m.Write(2, instr(005, false, 0, 0402)) // STA 0402
	m.Write(3, instr(000, false, 0, 0))    // HLT
	m.Write(0400, 5)
	m.Write(0401, 3)

	runToHalt(t, m)

	assert.EqualValues(t, 8, m.Read(0402))
	assert.False(t, m.Overflow)
}

// Scenario 3: JZE taken.
func TestScenarioJzeTaken(t *testing.T) {
	m := NewMachine()
	m.Write(0, instr(024, false, 0, 0400))   // LDA 0400
	m.Write(1, instr(071, false, 0, 0010))   // JZE 0010
	m.Write(2, instr(024, false, 0, 0401))   // LDA 0401
	m.Write(3, instr(000, false, 0, 0))      // HLT
	m.Write(010, instr(024, false, 0, 0402)) // LDA 0402
	m.Write(011, instr(000, false, 0, 0))    // HLT
	m.Write(0400, 0)
	m.Write(0401, 0xBAD)
	m.Write(0402, 0x600D)

	runToHalt(t, m)

	assert.EqualValues(t, 0x600D, m.A)
}

// Scenario 4: signed MPY.
func TestScenarioMpySigned(t *testing.T) {
	m := NewMachine()
	m.Write(0, instr(023, false, 0, 0400)) // LDB 0400
	m.Write(1, instr(034, false, 0, 0401)) // MPY 0401
	m.Write(2, instr(000, false, 0, 0))    // HLT
	m.Write(0400, SignBit|5)
	m.Write(0401, 3)

	runToHalt(t, m)

	assert.EqualValues(t, SignBit|15, m.B)
	assert.EqualValues(t, SignBit, m.A)
}

// Scenario 5: DIV 5000 / 50.
func TestScenarioDivExact(t *testing.T) {
	m := NewMachine()
	m.B = 5000
	m.Write(0, instr(035, false, 0, 0400)) // DIV 0400
	m.Write(1, instr(000, false, 0, 0))    // HLT
	m.Write(0400, 50)

	runToHalt(t, m)

	assert.EqualValues(t, 100, m.B)
	assert.EqualValues(t, 0, m.A)
	assert.False(t, m.Overflow)
}

// Scenario 6: improper divide.
func TestScenarioImproperDivide(t *testing.T) {
	m := NewMachine()
	m.A = 100
	m.B = 0
	m.Write(0, instr(035, false, 0, 0400)) // DIV 0400
	m.Write(1, instr(000, false, 0, 0))    // HLT
	m.Write(0400, 50)

	runToHalt(t, m)

	assert.EqualValues(t, 100, m.A)
	assert.EqualValues(t, 0, m.B)
	assert.True(t, m.Overflow)
}

func TestHaltRefetchIsIdempotent(t *testing.T) {
	m := NewMachine()
	m.Write(0, instr(000, false, 0, 0)) // HLT
	Step(m)
	assert.True(t, m.Halted)
	assert.EqualValues(t, 0, m.PC)

	before := *m
	Step(m)
	Step(m)
	assert.Equal(t, before, *m)
}

func TestIABTwiceIsIdentity(t *testing.T) {
	m := NewMachine()
	m.A = 12
	m.B = 34
	m.Write(0, instr(057, false, 0, 0)) // IAB
	m.Write(1, instr(057, false, 0, 0)) // IAB
	Step(m)
	Step(m)
	assert.EqualValues(t, 12, m.A)
	assert.EqualValues(t, 34, m.B)
}

func TestShiftByZeroIsIdentity(t *testing.T) {
	m := NewMachine()
	m.A = SignBit | 0x1234

	Step(withProgram(m, instr(040, false, 0, 0))) // ARS 0
	assert.EqualValues(t, SignBit|0x1234, m.A)

	m2 := NewMachine()
	m2.A = SignBit | 0x1234
	Step(withProgram(m2, instr(041, false, 0, 0))) // ALS 0
	assert.EqualValues(t, SignBit|0x1234, m2.A)
}

func withProgram(m *Machine, word uint32) *Machine {
	m.Write(m.PC, word)
	return m
}

func TestAddThenSubRestoresA(t *testing.T) {
	m := NewMachine()
	m.A = 10
	m.Write(0400, 7)

	Step(withProgram(m, instr(010, false, 0, 0400))) // ADD 0400
	assert.EqualValues(t, 17, m.A)

	m.Write(m.PC, instr(011, false, 0, 0400)) // SUB 0400
	Step(m)
	assert.EqualValues(t, 10, m.A)
	assert.False(t, m.Overflow)
}

func TestMpyThenDivRecoversB(t *testing.T) {
	m := NewMachine()
	m.B = 123
	m.Write(0400, 7)

	Step(withProgram(m, instr(034, false, 0, 0400))) // MPY 0400
	Step(withProgram(m, instr(035, false, 0, 0400))) // DIV 0400

	assert.EqualValues(t, 123, m.B)
	assert.EqualValues(t, 0, m.A)
	assert.False(t, m.Overflow)
}

func TestAnaIsCommutativeAndIdempotent(t *testing.T) {
	a, b := uint32(0b1100), uint32(0b1010)

	m1 := NewMachine()
	m1.A = a
	m1.Write(0400, b)
	Step(withProgram(m1, instr(015, false, 0, 0400)))

	m2 := NewMachine()
	m2.A = b
	m2.Write(0400, a)
	Step(withProgram(m2, instr(015, false, 0, 0400)))

	assert.Equal(t, m1.A, m2.A)

	m3 := NewMachine()
	m3.A = a
	m3.Write(0400, a)
	Step(withProgram(m3, instr(015, false, 0, 0400)))
	assert.EqualValues(t, a, m3.A)
}

func TestEraSelfClearsToZero(t *testing.T) {
	m := NewMachine()
	m.A = 0x600D
	m.Write(0400, 0x600D)
	Step(withProgram(m, instr(017, false, 0, 0400))) // ERA 0400
	assert.EqualValues(t, 0, m.A)
}

func TestXecRunsInstructionAtEffectiveAddress(t *testing.T) {
	m := NewMachine()
	m.Write(0, instr(002, false, 0, 0400))    // XEC 0400
	m.Write(0400, instr(024, false, 0, 0401)) // LDA 0401
	m.Write(0401, 0x42)

	cost := Step(m)

	assert.EqualValues(t, 0x42, m.A)
	assert.EqualValues(t, 0401, m.PC) // XEC set PC=ea+1; LDA did not alter it
	assert.EqualValues(t, 5+10, cost)
}

func TestXecIndirectToJmpLetsInnerPCStand(t *testing.T) {
	m := NewMachine()
	m.Write(0, instr(002, false, 0, 0400))   // XEC 0400
	m.Write(0400, instr(074, false, 0, 0500)) // JMP 0500

	Step(m)

	assert.EqualValues(t, 0500, m.PC)
}

func TestUnimplementedOpcodeHalts(t *testing.T) {
	m := NewMachine()
	m.Write(0, instr(001, false, 0, 0)) // unimplemented opcode
	Step(m)
	assert.True(t, m.Halted)
}

func TestCyclesMonotoneNonDecreasing(t *testing.T) {
	m := NewMachine()
	m.Write(0, instr(077, false, 0, 0)) // NOP
	m.Write(1, instr(077, false, 0, 0)) // NOP
	m.Write(2, instr(000, false, 0, 0)) // HLT

	prev := m.Cycles
	for i := 0; i < 3; i++ {
		Step(m)
		assert.GreaterOrEqual(t, m.Cycles, prev)
		prev = m.Cycles
	}
}

func TestRunRespectsBudget(t *testing.T) {
	m := NewMachine()
	for i := uint16(0); i < 100; i++ {
		m.Write(i, instr(077, false, 0, 0)) // NOP, cost 5 each
	}

	spent := Run(m, 12)

	assert.False(t, m.Halted)
	assert.LessOrEqual(t, spent, uint64(15))
	assert.Greater(t, spent, uint64(0))
}

func TestRunUnboundedBudgetRunsToHalt(t *testing.T) {
	m := NewMachine()
	m.Write(0, instr(077, false, 0, 0)) // NOP
	m.Write(1, instr(000, false, 0, 0)) // HLT

	spent := Run(m, 0)

	assert.True(t, m.Halted)
	assert.EqualValues(t, 10, spent)
}

func TestLdxZeroSelectorIsNoOp(t *testing.T) {
	m := NewMachine()
	m.Write(0400, 5)
	Step(withProgram(m, instr(056, false, 0, 0400))) // LDX 0400, selector 0
	assert.EqualValues(t, [4]uint16{0, 0, 0, 0}, m.X)
}

func TestSixWithZeroSelectorStoresZero(t *testing.T) {
	m := NewMachine()
	m.Write(0400, 0x7FFF)
	Step(withProgram(m, instr(066, false, 0, 0400))) // SIX 0400, selector 0
	assert.EqualValues(t, 0, m.Read(0400))
}
