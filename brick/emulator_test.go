package brick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferranti/go-brick/brick/timing"
	"github.com/aferranti/go-brick/brick/video"
)

// buildROM assembles a 32 KiB no-MBC image with a valid header and the given
// code at the entry point.
func buildROM(code ...uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], code)
	var sum uint8
	for a := 0x0134; a <= 0x014C; a++ {
		sum = sum - rom[a] - 1
	}
	rom[0x014D] = sum
	return rom
}

// jpLoop spins at 0x0100 forever; every instruction costs 16 cycles, which
// divides all the frame boundaries evenly.
func jpLoop() []byte {
	return buildROM(0xC3, 0x00, 0x01)
}

func TestBootFixedPoint(t *testing.T) {
	emu, err := New(jpLoop())
	require.NoError(t, err)

	c := emu.CPU()
	assert.Equal(t, uint16(0x01B0), c.AF())
	assert.Equal(t, uint16(0x0013), c.BC())
	assert.Equal(t, uint16(0x00D8), c.DE())
	assert.Equal(t, uint16(0x014D), c.HL())
	assert.Equal(t, uint16(0xFFFE), c.SP())
	assert.Equal(t, uint16(0x0100), c.PC())
	assert.True(t, c.IME())
	assert.Equal(t, 0, emu.GPU().Line())
}

func TestInvalidROMRejected(t *testing.T) {
	_, err := New(make([]byte, 0x100))
	assert.ErrorIs(t, err, ErrInvalidHeader)

	rom := buildROM()
	rom[0x0147] = 0x06 // MBC2: outside the supported set
	_, err = New(rom)
	assert.ErrorIs(t, err, ErrUnsupportedMBC)
}

func TestRunUntilVBlankCycleBudget(t *testing.T) {
	emu, err := New(jpLoop())
	require.NoError(t, err)

	// reset leaves the PPU at LY=0 mode 2: the first VBlank entry comes
	// after the 144 visible lines
	first := emu.RunUntilVBlank()
	assert.Equal(t, 144*timing.CyclesPerScanline, first)

	// every subsequent frame is exactly one full frame long
	for i := 0; i < 3; i++ {
		assert.Equal(t, timing.CyclesPerFrame, emu.RunUntilVBlank())
	}
	assert.Equal(t, video.ModeVBlank, emu.GPU().Mode())
	assert.Equal(t, 144, emu.GPU().Line())
}

func TestTimerInterruptScenario(t *testing.T) {
	// from reset: TMA=0xFF, TIMA=0xFF, TAC=0x05 (bit-3 tap), IE=Timer, EI.
	// The next tap edge overflows TIMA and the CPU must land on 0x0050.
	// IME is already 1 after reset, so DI first keeps the interrupt from
	// being taken before the EI.
	code := []uint8{
		0xF3,       // DI
		0x3E, 0xFF, // LD A,0xFF
		0xE0, 0x06, // LDH (TMA),A
		0xE0, 0x05, // LDH (TIMA),A
		0x3E, 0x05, // LD A,0x05
		0xE0, 0x07, // LDH (TAC),A
		0x3E, 0x04, // LD A,0x04
		0xE0, 0xFF, // LDH (IE),A
		0xFB, // EI
		// NOPs to run until the interrupt hits
	}
	emu, err := New(buildROM(code...))
	require.NoError(t, err)

	setup := 0
	for emu.CPU().PC() != 0x0110 {
		setup += emu.StepInstruction()
	}

	total := 0
	for emu.CPU().PC() != 0x0050 {
		total += emu.StepInstruction()
		require.Less(t, total, 200, "timer interrupt never serviced")
	}

	assert.Equal(t, uint16(0xFFFC), emu.CPU().SP(), "PC pushed on service")
	// with TMA=0xFF the counter re-overflows every tap edge, so TIMA reads
	// either the reloaded TMA or the 0x00 of a fresh overflow window
	tima := emu.MMU().Read(0xFF05)
	assert.Contains(t, []uint8{0xFF, 0x00}, tima, "TIMA follows TMA")
}

func TestOAMDMAScenario(t *testing.T) {
	emu, err := New(jpLoop())
	require.NoError(t, err)
	mmu := emu.MMU()

	mmu.Write(0xFF40, 0x00) // LCD off: only DMA gates OAM
	for i := 0; i < 0xA0; i++ {
		mmu.Write(uint16(0xC000+i), uint8(i))
	}

	mmu.Write(0xFF46, 0xC0)

	elapsed := 0
	for elapsed < 640 {
		assert.Equal(t, uint8(0xFF), mmu.Read(0xFE00), "OAM shielded during DMA")
		elapsed += emu.StepInstruction()
	}

	for i := 0; i < 0xA0; i++ {
		assert.Equalf(t, uint8(i), mmu.Read(uint16(0xFE00+i)), "OAM[%d]", i)
	}
}

func TestJoypadThroughEngine(t *testing.T) {
	emu, err := New(jpLoop())
	require.NoError(t, err)

	emu.MMU().Write(0xFF00, 0x20) // select d-pad
	emu.SetButton(ButtonLeft, true)
	assert.Equal(t, uint8(0xED), emu.MMU().Read(0xFF00))

	emu.SetButton(ButtonLeft, false)
	assert.Equal(t, uint8(0xEF), emu.MMU().Read(0xFF00))
}

func TestFramebufferFormats(t *testing.T) {
	emu, err := New(jpLoop())
	require.NoError(t, err)

	emu.RunUntilVBlank()

	shades := emu.Framebuffer()
	require.Len(t, shades, video.FrameSize)

	rgba := emu.FramebufferRGBA()
	require.Len(t, rgba, video.FrameSize*4)
	assert.Equal(t, uint8(0xFF), rgba[3], "alpha is opaque")
}

func TestPullAudioShape(t *testing.T) {
	emu, err := New(jpLoop())
	require.NoError(t, err)

	emu.RunUntilVBlank()
	samples := emu.PullAudio(256)
	assert.Len(t, samples, 512, "interleaved stereo pairs")
	for _, s := range samples {
		assert.LessOrEqual(t, s, float32(1.0))
		assert.GreaterOrEqual(t, s, float32(-1.0))
	}
}

func TestBatteryRAMRoundTrip(t *testing.T) {
	rom := jpLoop()
	rom[0x0147] = 0x03 // MBC1+RAM+BATTERY
	rom[0x0149] = 0x02 // 8 KiB
	fixChecksum(rom)

	emu, err := New(rom)
	require.NoError(t, err)

	emu.MMU().Write(0x0000, 0x0A)
	emu.MMU().Write(0xA000, 0x5A)
	saved := emu.BatteryRAM()
	require.NotNil(t, saved)

	emu2, err := New(rom)
	require.NoError(t, err)
	require.NoError(t, emu2.LoadBatteryRAM(saved))
	emu2.MMU().Write(0x0000, 0x0A)
	assert.Equal(t, uint8(0x5A), emu2.MMU().Read(0xA000))
}

func TestResetPreservesBatteryRAM(t *testing.T) {
	rom := jpLoop()
	rom[0x0147] = 0x03
	rom[0x0149] = 0x02
	fixChecksum(rom)

	emu, err := New(rom)
	require.NoError(t, err)

	emu.MMU().Write(0x0000, 0x0A)
	emu.MMU().Write(0xA000, 0x77)
	emu.RunUntilVBlank()

	emu.Reset()
	assert.Equal(t, uint16(0x0100), emu.CPU().PC())
	emu.MMU().Write(0x0000, 0x0A)
	assert.Equal(t, uint8(0x77), emu.MMU().Read(0xA000), "battery RAM survives reset")
}

func fixChecksum(rom []byte) {
	var sum uint8
	for a := 0x0134; a <= 0x014C; a++ {
		sum = sum - rom[a] - 1
	}
	rom[0x014D] = sum
}
