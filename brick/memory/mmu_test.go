package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferranti/go-brick/brick/audio"
	"github.com/aferranti/go-brick/brick/interrupt"
	"github.com/aferranti/go-brick/brick/serial"
	"github.com/aferranti/go-brick/brick/video"
)

// testImage builds a header-valid ROM image of 2<<romCode 16 KiB banks.
func testImage(cartType, romCode, ramCode uint8) []uint8 {
	rom := make([]uint8, (2<<romCode)*0x4000)
	rom[cartridgeTypeAddress] = cartType
	rom[romSizeAddress] = romCode
	rom[ramSizeAddress] = ramCode
	var sum uint8
	for a := 0x0134; a <= 0x014C; a++ {
		sum = sum - rom[a] - 1
	}
	rom[headerChecksumAddress] = sum
	return rom
}

func newTestMMU(t *testing.T) (*MMU, *interrupt.Controller, *video.GPU) {
	t.Helper()
	cart, err := NewCartridge(testImage(0x00, 0x00, 0x00))
	require.NoError(t, err)

	irq := &interrupt.Controller{}
	irq.Reset()
	gpu := video.New(irq)
	apu := audio.New()
	port := serial.NewPort(func() { irq.Request(interrupt.Serial) })
	return New(cart, irq, gpu, apu, port), irq, gpu
}

func TestEchoRAMMirrorsWRAM(t *testing.T) {
	mmu, _, _ := newTestMMU(t)

	for k := 0; k < 0x1E00; k++ {
		mmu.Write(uint16(0xC000+k), uint8(k))
		assert.Equal(t, uint8(k), mmu.Read(uint16(0xE000+k)))
	}

	// and the mirror works for writes too
	mmu.Write(0xE123, 0x77)
	assert.Equal(t, uint8(0x77), mmu.Read(0xC123))
}

func TestIFUpperBitsReadHigh(t *testing.T) {
	mmu, _, _ := newTestMMU(t)

	mmu.Write(0xFF0F, 0x00)
	assert.Equal(t, uint8(0xE0), mmu.Read(0xFF0F)&0xE0)

	mmu.Write(0xFF0F, 0xFF)
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFF0F))

	mmu.Write(0xFF0F, 0x15)
	assert.Equal(t, uint8(0xF5), mmu.Read(0xFF0F))
}

func TestProhibitedRegion(t *testing.T) {
	mmu, _, _ := newTestMMU(t)

	mmu.Write(0xFEA0, 0x12)
	mmu.Write(0xFEFF, 0x34)
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFEA0))
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFEFF))
}

func TestUnmappedIOReadsFF(t *testing.T) {
	mmu, _, _ := newTestMMU(t)

	for _, address := range []uint16{0xFF03, 0xFF08, 0xFF4C, 0xFF50, 0xFF7F} {
		assert.Equalf(t, uint8(0xFF), mmu.Read(address), "address 0x%04X", address)
	}
}

func TestHRAM(t *testing.T) {
	mmu, _, _ := newTestMMU(t)

	for k := 0; k < 0x7F; k++ {
		mmu.Write(uint16(0xFF80+k), uint8(k^0xA5))
	}
	for k := 0; k < 0x7F; k++ {
		assert.Equal(t, uint8(k^0xA5), mmu.Read(uint16(0xFF80+k)))
	}
}

func TestIERegister(t *testing.T) {
	mmu, irq, _ := newTestMMU(t)

	mmu.Write(0xFFFF, 0xAB)
	assert.Equal(t, uint8(0xAB), mmu.Read(0xFFFF))
	assert.Equal(t, uint8(0xAB), irq.ReadEnable())
}

func TestRead16LittleEndian(t *testing.T) {
	mmu, _, _ := newTestMMU(t)

	mmu.Write16(0xC100, 0xBEEF)
	assert.Equal(t, uint8(0xEF), mmu.Read(0xC100))
	assert.Equal(t, uint8(0xBE), mmu.Read(0xC101))
	assert.Equal(t, uint16(0xBEEF), mmu.Read16(0xC100))
}

func TestVRAMBlockedDuringPixelTransfer(t *testing.T) {
	mmu, _, gpu := newTestMMU(t)

	// LCD is on after reset; walk the PPU into pixel transfer
	gpu.Tick(80)
	require.Equal(t, video.ModePixelTransfer, gpu.Mode())

	mmu.Write(0x8000, 0x42)
	assert.Equal(t, uint8(0xFF), mmu.Read(0x8000))

	// finish the line into HBlank: VRAM opens up
	gpu.Tick(172)
	require.Equal(t, video.ModeHBlank, gpu.Mode())
	mmu.Write(0x8000, 0x42)
	assert.Equal(t, uint8(0x42), mmu.Read(0x8000))
}

func TestOAMBlockedDuringScanModes(t *testing.T) {
	mmu, _, gpu := newTestMMU(t)

	require.Equal(t, video.ModeOAMScan, gpu.Mode())
	mmu.Write(0xFE00, 0x42)
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFE00))

	gpu.Tick(80 + 172)
	require.Equal(t, video.ModeHBlank, gpu.Mode())
	mmu.Write(0xFE00, 0x42)
	assert.Equal(t, uint8(0x42), mmu.Read(0xFE00))
}

func TestOAMDMACopyAndShield(t *testing.T) {
	mmu, _, _ := newTestMMU(t)

	// keep the PPU out of the way so only DMA gates OAM
	mmu.Write(0xFF40, 0x00)

	for i := 0; i < 0xA0; i++ {
		mmu.Write(uint16(0xC000+i), uint8(i))
	}
	mmu.Write(0xFF46, 0xC0)
	assert.Equal(t, uint8(0xC0), mmu.Read(0xFF46))

	// the full 640 cycles keep OAM shielded
	for step := 0; step < 10; step++ {
		assert.Equal(t, uint8(0xFF), mmu.Read(0xFE00+uint16(step*16)))
		mmu.Tick(64)
	}

	assert.False(t, mmu.DMAActive())
	for i := 0; i < 0xA0; i++ {
		assert.Equalf(t, uint8(i), mmu.Read(uint16(0xFE00+i)), "OAM[%d]", i)
	}
}

func TestDMAFromEchoRegionUsesWRAM(t *testing.T) {
	mmu, _, _ := newTestMMU(t)
	mmu.Write(0xFF40, 0x00)

	mmu.Write(0xC040, 0x99)
	mmu.Write(0xFF46, 0xE0) // echo page maps back to 0xC000
	mmu.Tick(640)

	assert.Equal(t, uint8(0x99), mmu.Read(0xFE40))
}

func TestDisabledCartRAMReadsFF(t *testing.T) {
	cart, err := NewCartridge(testImage(0x02, 0x00, 0x02)) // MBC1+RAM
	require.NoError(t, err)

	irq := &interrupt.Controller{}
	gpu := video.New(irq)
	apu := audio.New()
	port := serial.NewPort(nil)
	mmu := New(cart, irq, gpu, apu, port)

	assert.Equal(t, uint8(0xFF), mmu.Read(0xA000))

	mmu.Write(0x0000, 0x0A) // enable
	mmu.Write(0xA000, 0x5A)
	assert.Equal(t, uint8(0x5A), mmu.Read(0xA000))

	mmu.Write(0x0000, 0x00) // disable again
	assert.Equal(t, uint8(0xFF), mmu.Read(0xA000))
}
