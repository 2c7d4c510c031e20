package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sliceMemory []uint8

func (m sliceMemory) Read(address uint16) uint8 {
	return m[address]
}

func TestDecodeSimple(t *testing.T) {
	mem := sliceMemory{0x00, 0xAF, 0x3E, 0x42}

	inst, next := Decode(mem, 0)
	assert.Equal(t, "NOP", inst.Mnemonic)
	assert.Equal(t, uint16(1), next)

	inst, next = Decode(mem, 1)
	assert.Equal(t, "XOR A", inst.Mnemonic)
	assert.Equal(t, uint16(2), next)

	inst, next = Decode(mem, 2)
	assert.Equal(t, "LD A,0x42", inst.Mnemonic)
	assert.Equal(t, uint16(4), next)
}

func TestDecodeWordOperand(t *testing.T) {
	mem := sliceMemory{0xC3, 0x50, 0x01} // JP 0x0150

	inst, next := Decode(mem, 0)
	assert.Equal(t, "JP 0x0150", inst.Mnemonic)
	assert.Equal(t, uint16(3), next)
	assert.Equal(t, []uint8{0xC3, 0x50, 0x01}, inst.Bytes)
}

func TestDecodeCBPrefixed(t *testing.T) {
	mem := sliceMemory{0xCB, 0x7C} // BIT 7,H

	inst, next := Decode(mem, 0)
	assert.Equal(t, "BIT 7,H", inst.Mnemonic)
	assert.Equal(t, uint16(2), next)
}

func TestDecodeRange(t *testing.T) {
	mem := sliceMemory{0x00, 0x3E, 0x01, 0x00}

	insts := DecodeRange(mem, 0, 3)
	assert.Len(t, insts, 3)
	assert.Equal(t, uint16(0), insts[0].Address)
	assert.Equal(t, uint16(1), insts[1].Address)
	assert.Equal(t, uint16(3), insts[2].Address)
}

func TestStringFormat(t *testing.T) {
	mem := sliceMemory{0x3E, 0x42}
	inst, _ := Decode(mem, 0)
	assert.Equal(t, "0000  3E 42     LD A,0x42", inst.String())
}
