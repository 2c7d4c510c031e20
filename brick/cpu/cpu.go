// Package cpu implements the Sharp LR35902 interpreter: the register file,
// the primary and CB-prefixed dispatch tables, and interrupt sequencing.
package cpu

import (
	"fmt"
	"log/slog"

	"github.com/aferranti/go-brick/brick/bit"
	"github.com/aferranti/go-brick/brick/interrupt"
	"github.com/aferranti/go-brick/brick/memory"
)

// Flag is one of the four condition flags held in the high nibble of F.
type Flag uint8

const (
	zeroFlag      Flag = 0x80
	subFlag       Flag = 0x40
	halfCarryFlag Flag = 0x20
	carryFlag     Flag = 0x10
)

// interruptServiceCycles is the fixed cost of accepting an interrupt:
// two internal delay M-cycles, two stack writes, and the vector jump.
const interruptServiceCycles = 20

// CPU holds the LR35902 state. The HALT bug is modeled in its "do not halt"
// form only: HALT with IME=0 and (IE & IF) != 0 continues executing instead
// of sleeping. The byte-duplication variant is not reproduced.
type CPU struct {
	memory *memory.MMU
	irq    *interrupt.Controller

	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16

	ime       bool
	eiPending bool
	halted    bool
	stopped   bool

	cycles        uint64
	currentOpcode uint8
}

// New returns a CPU wired to the given MMU and interrupt controller,
// initialized to the post-BIOS register state.
func New(mmu *memory.MMU, irq *interrupt.Controller) *CPU {
	cpu := &CPU{memory: mmu, irq: irq}
	cpu.Reset()
	return cpu
}

// Reset restores the post-BIOS fixed point: the register values the boot ROM
// leaves behind when it hands control to the cartridge at 0x0100.
func (c *CPU) Reset() {
	c.a, c.f = 0x01, 0xB0
	c.b, c.c = 0x00, 0x13
	c.d, c.e = 0x00, 0xD8
	c.h, c.l = 0x01, 0x4D
	c.sp = 0xFFFE
	c.pc = 0x0100
	c.ime = true
	c.eiPending = false
	c.halted = false
	c.stopped = false
	c.cycles = 0
	c.currentOpcode = 0
}

// Step runs one instruction (or services one interrupt, or idles in HALT)
// and returns the T-cycles consumed.
func (c *CPU) Step() int {
	enableIME := c.eiPending

	if c.halted {
		// Wake-up requires IF & IE != 0; a raised but masked source
		// keeps the CPU asleep.
		if !c.irq.AnyPending() {
			c.cycles += 4
			return 4
		}
		c.halted = false
	}

	if c.ime {
		if kind, ok := c.irq.Pending(); ok {
			return c.service(kind)
		}
	}

	c.currentOpcode = c.memory.Read(c.pc)
	c.pc++
	cycles := opcodeTable[c.currentOpcode].fn(c)

	if enableIME && c.eiPending {
		c.ime = true
		c.eiPending = false
	}

	c.cycles += uint64(cycles)
	return cycles
}

// service accepts the given interrupt: IME off, PC pushed, jump to vector.
func (c *CPU) service(kind interrupt.Kind) int {
	c.ime = false
	c.eiPending = false
	c.irq.Accept(kind)
	c.pushStack(c.pc)
	c.pc = kind.Vector()
	c.cycles += interruptServiceCycles
	return interruptServiceCycles
}

func illegal(c *CPU) int {
	slog.Warn("Illegal opcode executed as NOP",
		"opcode", fmt.Sprintf("0x%02X", c.currentOpcode),
		"pc", fmt.Sprintf("0x%04X", c.pc-1))
	return 4
}

// flag helpers

func (c *CPU) setFlag(flag Flag) {
	c.f |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.f &^= uint8(flag)
}

func (c *CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if condition {
		c.setFlag(flag)
	} else {
		c.resetFlag(flag)
	}
}

func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}

// immediate operand readers

func (c *CPU) readImmediate() uint8 {
	value := c.memory.Read(c.pc)
	c.pc++
	return value
}

func (c *CPU) readImmediateWord() uint16 {
	low := c.readImmediate()
	high := c.readImmediate()
	return bit.Combine(high, low)
}

// 16 bit register pairs

func (c *CPU) getAF() uint16 { return bit.Combine(c.a, c.f) }
func (c *CPU) getBC() uint16 { return bit.Combine(c.b, c.c) }
func (c *CPU) getDE() uint16 { return bit.Combine(c.d, c.e) }
func (c *CPU) getHL() uint16 { return bit.Combine(c.h, c.l) }

func (c *CPU) setAF(value uint16) {
	c.a = bit.High(value)
	// the low nibble of F does not exist in hardware
	c.f = bit.Low(value) & 0xF0
}

func (c *CPU) setBC(value uint16) {
	c.b, c.c = bit.High(value), bit.Low(value)
}

func (c *CPU) setDE(value uint16) {
	c.d, c.e = bit.High(value), bit.Low(value)
}

func (c *CPU) setHL(value uint16) {
	c.h, c.l = bit.High(value), bit.Low(value)
}

// accessors used by the emulator driver, debug front-ends and tests

func (c *CPU) PC() uint16          { return c.pc }
func (c *CPU) SP() uint16          { return c.sp }
func (c *CPU) AF() uint16          { return c.getAF() }
func (c *CPU) BC() uint16          { return c.getBC() }
func (c *CPU) DE() uint16          { return c.getDE() }
func (c *CPU) HL() uint16          { return c.getHL() }
func (c *CPU) IME() bool           { return c.ime }
func (c *CPU) Halted() bool        { return c.halted }
func (c *CPU) Stopped() bool       { return c.stopped }
func (c *CPU) TotalCycles() uint64 { return c.cycles }
