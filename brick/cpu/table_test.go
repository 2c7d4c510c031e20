package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var illegalOpcodes = []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

func TestTablesAreComplete(t *testing.T) {
	for op := 0; op < 256; op++ {
		assert.NotNilf(t, opcodeTable[op].fn, "primary opcode 0x%02X has no handler", op)
		assert.NotNilf(t, cbTable[op].fn, "CB opcode 0x%02X has no handler", op)
		assert.Equal(t, 2, cbTable[op].length)
	}
	for _, op := range illegalOpcodes {
		assert.True(t, Describe(op).Illegal)
	}
}

// TestObservedCyclesMatchTable executes every legal primary opcode on a
// fresh CPU and compares the cycles its handler reports against the table.
// Conditional instructions are forced onto their taken path so the table's
// taken cost applies.
func TestObservedCyclesMatchTable(t *testing.T) {
	for op := 0; op < 256; op++ {
		if Describe(uint8(op)).Illegal || op == 0xCB {
			continue
		}

		cpu, _, _ := newTestCPU(t, uint8(op), 0x00, 0x00)
		cpu.sp = 0xC800
		cpu.setHL(0xC400)
		cpu.setBC(0xC400)
		cpu.setDE(0xC400)

		// force conditions taken: NZ/NC need Z=0/C=0, Z/C need them set
		switch op {
		case 0x28, 0x38, 0xC8, 0xCA, 0xCC, 0xD8, 0xDA, 0xDC:
			cpu.f = 0x90
		default:
			cpu.f = 0x00
		}

		cycles := cpu.Step()
		assert.Equalf(t, Describe(uint8(op)).Cycles, cycles,
			"opcode 0x%02X (%s)", op, Describe(uint8(op)).Mnemonic)
	}
}

// TestCBObservedCycles covers the three CB timing classes.
func TestCBObservedCycles(t *testing.T) {
	cases := []struct {
		name   string
		sub    uint8
		cycles int
	}{
		{"register rotate", 0x00, 8},       // RLC B
		{"register bit", 0x40, 8},          // BIT 0,B
		{"memory bit", 0x46, 12},           // BIT 0,(HL)
		{"memory rotate", 0x06, 16},        // RLC (HL)
		{"memory set", 0xC6, 16},           // SET 0,(HL)
		{"memory res", 0x86, 16},           // RES 0,(HL)
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cpu, _, _ := newTestCPU(t, 0xCB, tc.sub)
			cpu.setHL(0xC400)
			assert.Equal(t, tc.cycles, cpu.Step())
			assert.Equal(t, tc.cycles, DescribeCB(tc.sub).Cycles)
		})
	}
}

// TestNotTakenCycles pins the shorter not-taken costs of the conditional
// control-flow instructions.
func TestNotTakenCycles(t *testing.T) {
	cases := []struct {
		op     uint8
		flags  uint8
		cycles int
	}{
		{0x20, 0x80, 8},  // JR NZ with Z set
		{0xC0, 0x80, 8},  // RET NZ with Z set
		{0xC2, 0x80, 12}, // JP NZ with Z set
		{0xC4, 0x80, 12}, // CALL NZ with Z set
		{0xD8, 0x00, 8},  // RET C with C clear
	}
	for _, tc := range cases {
		cpu, _, _ := newTestCPU(t, tc.op, 0x00, 0x00)
		cpu.f = tc.flags
		assert.Equalf(t, tc.cycles, cpu.Step(), "opcode 0x%02X", tc.op)
	}
}
