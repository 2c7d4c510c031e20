package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferranti/go-brick/brick/audio"
	"github.com/aferranti/go-brick/brick/interrupt"
	"github.com/aferranti/go-brick/brick/memory"
	"github.com/aferranti/go-brick/brick/serial"
	"github.com/aferranti/go-brick/brick/video"
)

// testROM builds a minimal 32 KiB no-MBC image with a valid header and the
// given code placed at the entry point 0x0100.
func testROM(code ...uint8) []uint8 {
	rom := make([]uint8, 0x8000)
	copy(rom[0x0100:], code)
	var sum uint8
	for a := 0x0134; a <= 0x014C; a++ {
		sum = sum - rom[a] - 1
	}
	rom[0x014D] = sum
	return rom
}

func newTestCPU(t *testing.T, code ...uint8) (*CPU, *memory.MMU, *interrupt.Controller) {
	t.Helper()
	cart, err := memory.NewCartridge(testROM(code...))
	require.NoError(t, err)

	irq := &interrupt.Controller{}
	irq.Reset()
	gpu := video.New(irq)
	// LCD off keeps VRAM/OAM open for test access
	gpu.WriteRegister(0xFF40, 0x00)
	apu := audio.New()
	port := serial.NewPort(func() { irq.Request(interrupt.Serial) })
	mmu := memory.New(cart, irq, gpu, apu, port)

	return New(mmu, irq), mmu, irq
}

func TestPostBIOSState(t *testing.T) {
	cpu, _, _ := newTestCPU(t)

	assert.Equal(t, uint16(0x01B0), cpu.AF())
	assert.Equal(t, uint16(0x0013), cpu.BC())
	assert.Equal(t, uint16(0x00D8), cpu.DE())
	assert.Equal(t, uint16(0x014D), cpu.HL())
	assert.Equal(t, uint16(0xFFFE), cpu.SP())
	assert.Equal(t, uint16(0x0100), cpu.PC())
	assert.True(t, cpu.IME())
}

func TestAddCarryHalfCarry(t *testing.T) {
	// ADD A,B with A=0xF0, B=0x20: carry out, no half carry
	cpu, _, _ := newTestCPU(t, 0x80)
	cpu.a, cpu.b = 0xF0, 0x20
	cpu.f = 0

	cycles := cpu.Step()

	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint8(0x10), cpu.a)
	assert.Equal(t, uint8(0x10), cpu.f, "only C should be set")
}

func TestAddHalfCarry(t *testing.T) {
	cpu, _, _ := newTestCPU(t, 0x80)
	cpu.a, cpu.b = 0x0F, 0x01
	cpu.f = 0

	cpu.Step()

	assert.Equal(t, uint8(0x10), cpu.a)
	assert.True(t, cpu.isSetFlag(halfCarryFlag))
	assert.False(t, cpu.isSetFlag(carryFlag))
	assert.False(t, cpu.isSetFlag(zeroFlag))
}

func TestBitSevenH(t *testing.T) {
	// BIT 7,H with H=0x80: Z clear, N clear, H set, C untouched
	cpu, _, _ := newTestCPU(t, 0xCB, 0x7C)
	cpu.h = 0x80
	cpu.f = uint8(carryFlag)

	cycles := cpu.Step()

	assert.Equal(t, 8, cycles)
	assert.False(t, cpu.isSetFlag(zeroFlag))
	assert.False(t, cpu.isSetFlag(subFlag))
	assert.True(t, cpu.isSetFlag(halfCarryFlag))
	assert.True(t, cpu.isSetFlag(carryFlag), "C must be untouched")
}

func TestFlagLowNibbleAlwaysZero(t *testing.T) {
	// POP AF must mask the low nibble even when the stack holds garbage
	cpu, mmu, _ := newTestCPU(t, 0xF1)
	cpu.sp = 0xC100
	mmu.Write16(0xC100, 0xABCF)

	cpu.Step()

	assert.Equal(t, uint8(0xC0), cpu.f)
	assert.Equal(t, uint8(0xAB), cpu.a)
}

func TestFlagNibbleAcrossALUOps(t *testing.T) {
	opcodes := []uint8{0x80, 0x88, 0x90, 0x98, 0xA0, 0xA8, 0xB0, 0xB8, 0x3C, 0x3D, 0x07, 0x17, 0x27, 0x2F, 0x37, 0x3F}
	for _, op := range opcodes {
		cpu, _, _ := newTestCPU(t, op)
		cpu.a, cpu.b = 0x9A, 0x77
		cpu.Step()
		assert.Zerof(t, cpu.f&0x0F, "opcode 0x%02X left bits in the F low nibble", op)
	}
}

func TestStackPushPop(t *testing.T) {
	cpu, mmu, _ := newTestCPU(t, 0xC5, 0xD1) // PUSH BC; POP DE
	cpu.setBC(0x1234)
	cpu.sp = 0xC200

	cpu.Step()
	assert.Equal(t, uint16(0xC1FE), cpu.SP())
	// little-endian in memory: low byte at the lower address
	assert.Equal(t, uint8(0x34), mmu.Read(0xC1FE))
	assert.Equal(t, uint8(0x12), mmu.Read(0xC1FF))

	cpu.Step()
	assert.Equal(t, uint16(0x1234), cpu.DE())
	assert.Equal(t, uint16(0xC200), cpu.SP())
}

func TestJRNegativeOffset(t *testing.T) {
	cpu, _, _ := newTestCPU(t, 0x18, 0xFE) // JR -2: tight loop
	cycles := cpu.Step()
	assert.Equal(t, 12, cycles)
	assert.Equal(t, uint16(0x0100), cpu.PC())
}

func TestConditionalJRNotTaken(t *testing.T) {
	cpu, _, _ := newTestCPU(t, 0x20, 0x10) // JR NZ,+16
	cpu.setFlag(zeroFlag)
	cycles := cpu.Step()
	assert.Equal(t, 8, cycles)
	assert.Equal(t, uint16(0x0102), cpu.PC())
}

func TestEIDelay(t *testing.T) {
	// after EI; DI no interrupt window ever opens
	cpu, _, irq := newTestCPU(t, 0xFB, 0xF3, 0x00)
	cpu.ime = false
	irq.WriteEnable(0x01)
	irq.WriteFlags(0x01) // VBlank requested and enabled

	cpu.Step() // EI
	assert.False(t, cpu.IME(), "IME must not be on during the instruction after EI")
	cpu.Step() // DI
	assert.False(t, cpu.IME())
	cpu.Step() // NOP, no service happened
	assert.Equal(t, uint16(0x0103), cpu.PC())
}

func TestEIEnablesAfterOneInstruction(t *testing.T) {
	cpu, _, irq := newTestCPU(t, 0xFB, 0x00, 0x00)
	cpu.ime = false
	irq.WriteEnable(0x04)
	irq.WriteFlags(0x04) // Timer

	cpu.Step() // EI
	cpu.Step() // NOP; IME turns on after it
	assert.True(t, cpu.IME())

	cycles := cpu.Step() // service
	assert.Equal(t, 20, cycles)
	assert.Equal(t, uint16(0x0050), cpu.PC())
}

func TestRETIEnablesImmediately(t *testing.T) {
	cpu, mmu, _ := newTestCPU(t, 0xD9)
	cpu.ime = false
	cpu.sp = 0xC0FE
	mmu.Write16(0xC0FE, 0x1234)

	cycles := cpu.Step()

	assert.Equal(t, 16, cycles)
	assert.True(t, cpu.IME())
	assert.Equal(t, uint16(0x1234), cpu.PC())
}

func TestInterruptService(t *testing.T) {
	cpu, mmu, irq := newTestCPU(t, 0x00)
	irq.WriteEnable(0x01)
	irq.WriteFlags(0x01)

	cycles := cpu.Step()

	assert.Equal(t, 20, cycles)
	assert.Equal(t, uint16(0x0040), cpu.PC())
	assert.False(t, cpu.IME())
	assert.Equal(t, uint16(0xFFFC), cpu.SP())
	assert.Equal(t, uint16(0x0100), mmu.Read16(0xFFFC), "pushed PC")
	assert.Zero(t, irq.ReadFlags()&0x01, "accepted bit must clear")
}

func TestInterruptPriority(t *testing.T) {
	cpu, _, irq := newTestCPU(t, 0x00)
	irq.WriteEnable(0x1F)
	irq.WriteFlags(0x1F)

	cpu.Step()
	assert.Equal(t, uint16(0x0040), cpu.PC(), "VBlank wins")

	cpu.ime = true
	cpu.Step()
	assert.Equal(t, uint16(0x0048), cpu.PC(), "STAT is next")
}

func TestHaltSleepsUntilPending(t *testing.T) {
	cpu, _, irq := newTestCPU(t, 0x76, 0x00)
	irq.WriteFlags(0x00)
	irq.WriteEnable(0x04)
	cpu.ime = true

	cpu.Step()
	assert.True(t, cpu.Halted())

	// raised but masked: IF alone must not wake the CPU
	irq.WriteFlags(0x01)
	cycles := cpu.Step()
	assert.Equal(t, 4, cycles)
	assert.True(t, cpu.Halted())

	// enabled and raised: wake and service in the same step
	irq.WriteFlags(0x04)
	cycles = cpu.Step()
	assert.Equal(t, 20, cycles)
	assert.False(t, cpu.Halted())
	assert.Equal(t, uint16(0x0050), cpu.PC())
}

func TestHaltIMEOffResumesWithoutService(t *testing.T) {
	cpu, _, irq := newTestCPU(t, 0x76, 0x00)
	cpu.ime = false
	irq.WriteFlags(0x00)
	irq.WriteEnable(0x04)

	cpu.Step()
	assert.True(t, cpu.Halted())

	irq.WriteFlags(0x04)
	cpu.Step() // wakes and runs the next instruction, no vector
	assert.False(t, cpu.Halted())
	assert.Equal(t, uint16(0x0102), cpu.PC())
	assert.NotZero(t, irq.ReadFlags()&0x04, "IF stays set")
}

func TestHaltBugDoesNotHalt(t *testing.T) {
	cpu, _, irq := newTestCPU(t, 0x76, 0x00)
	cpu.ime = false
	irq.WriteEnable(0x04)
	irq.WriteFlags(0x04) // pending on entry

	cpu.Step()
	assert.False(t, cpu.Halted(), "HALT with IME=0 and IE&IF!=0 must not sleep")
}

func TestIllegalOpcodeIsSoft(t *testing.T) {
	cpu, _, _ := newTestCPU(t, 0xD3, 0x00)
	cycles := cpu.Step()
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x0101), cpu.PC())
}

func TestDAAAfterAddition(t *testing.T) {
	// 0x15 + 0x27 = 0x3C, DAA adjusts to 0x42
	cpu, _, _ := newTestCPU(t, 0x80, 0x27)
	cpu.a, cpu.b = 0x15, 0x27
	cpu.Step()
	cpu.Step()
	assert.Equal(t, uint8(0x42), cpu.a)
}

func TestDAAAfterSubtraction(t *testing.T) {
	// 0x42 - 0x15 = 0x2D, DAA adjusts to 0x27
	cpu, _, _ := newTestCPU(t, 0x90, 0x27)
	cpu.a, cpu.b = 0x42, 0x15
	cpu.Step()
	cpu.Step()
	assert.Equal(t, uint8(0x27), cpu.a)
}

func TestAddSPSignedFlags(t *testing.T) {
	cpu, _, _ := newTestCPU(t, 0xE8, 0xFF) // ADD SP,-1
	cpu.sp = 0xC000
	cycles := cpu.Step()

	assert.Equal(t, 16, cycles)
	assert.Equal(t, uint16(0xBFFF), cpu.SP())
	assert.False(t, cpu.isSetFlag(zeroFlag))
	assert.False(t, cpu.isSetFlag(subFlag))
}

func TestRotateAForcesZClear(t *testing.T) {
	cpu, _, _ := newTestCPU(t, 0x07) // RLCA with A=0x00
	cpu.a = 0x00
	cpu.setFlag(zeroFlag)
	cpu.Step()
	assert.False(t, cpu.isSetFlag(zeroFlag), "RLCA forces Z=0")
}

func TestCBRotateSetsZ(t *testing.T) {
	cpu, _, _ := newTestCPU(t, 0xCB, 0x00) // RLC B with B=0x00
	cpu.b = 0x00
	cpu.Step()
	assert.True(t, cpu.isSetFlag(zeroFlag))
}

func TestSRAPreservesBitSeven(t *testing.T) {
	cpu, _, _ := newTestCPU(t, 0xCB, 0x28) // SRA B
	cpu.b = 0x81
	cpu.Step()
	assert.Equal(t, uint8(0xC0), cpu.b)
	assert.True(t, cpu.isSetFlag(carryFlag))
}

func TestSwap(t *testing.T) {
	cpu, _, _ := newTestCPU(t, 0xCB, 0x37) // SWAP A
	cpu.a = 0xF1
	cpu.Step()
	assert.Equal(t, uint8(0x1F), cpu.a)
	assert.False(t, cpu.isSetFlag(carryFlag))
}

func TestLDHLIncrementsHL(t *testing.T) {
	cpu, mmu, _ := newTestCPU(t, 0x22) // LD (HL+),A
	cpu.setHL(0xC123)
	cpu.a = 0x42
	cpu.Step()
	assert.Equal(t, uint8(0x42), mmu.Read(0xC123))
	assert.Equal(t, uint16(0xC124), cpu.HL())
}

func TestStopSetsLatch(t *testing.T) {
	cpu, _, _ := newTestCPU(t, 0x10, 0x00, 0x00)
	cycles := cpu.Step()
	assert.Equal(t, 4, cycles)
	assert.True(t, cpu.Stopped())
	assert.Equal(t, uint16(0x0102), cpu.PC(), "STOP skips its pad byte")
}
