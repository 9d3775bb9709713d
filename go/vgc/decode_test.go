package vgc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func instr(opcode uint8, indirect bool, index uint8, address uint16) uint32 {
	w := uint32(opcode&0x3F) << 18
	if indirect {
		w |= 1 << 17
	}
	w |= uint32(index&0x3) << 15
	w |= uint32(address) & uint32(AddressMask)
	return w
}

func TestDecodeFields(t *testing.T) {
	w := instr(024, true, 2, 0400)
	assert.EqualValues(t, 024, DecodeOpcode(w))
	assert.True(t, DecodeIndirect(w))
	assert.EqualValues(t, 2, DecodeIndex(w))
	assert.EqualValues(t, 0400, DecodeAddress(w))
}

func TestEffectiveAddressPlain(t *testing.T) {
	m := NewMachine()
	w := instr(024, false, 0, 0400)
	assert.EqualValues(t, 0400, EffectiveAddress(m, w))
}

func TestEffectiveAddressIndexed(t *testing.T) {
	m := NewMachine()
	m.X[2] = 10
	w := instr(024, false, 2, 0400)
	assert.EqualValues(t, 0400+10, EffectiveAddress(m, w))
}

func TestEffectiveAddressIndirect(t *testing.T) {
	m := NewMachine()
	m.Write(0400, 0777)
	w := instr(024, true, 0, 0400)
	assert.EqualValues(t, 0777, EffectiveAddress(m, w))
}

func TestEffectiveAddressIndexedThenIndirect(t *testing.T) {
	m := NewMachine()
	m.X[1] = 1
	m.Write(0401, 0600)
	w := instr(024, true, 1, 0400)
	assert.EqualValues(t, 0600, EffectiveAddress(m, w))
}

func TestEffectiveAddressWrapsModuloMemorySize(t *testing.T) {
	m := NewMachine()
	m.X[1] = 10
	w := instr(024, false, 1, AddressMask)
	ea := EffectiveAddress(m, w)
	assert.Less(t, int(ea), MemorySize)
}
