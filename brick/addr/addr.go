// Package addr holds the memory-mapped hardware register addresses of the
// DMG and the interrupt kinds with their service vectors.
package addr

// joypad
const (
	// P1 selects and reads the joypad matrix.
	P1 uint16 = 0xFF00
)

// serial port
const (
	// SB holds the byte being shifted out (and, after a transfer, the byte
	// shifted in — 0xFF with no peer attached).
	SB uint16 = 0xFF01
	// SC controls transfers: bit 7 starts one, bit 0 selects the internal
	// clock. Hardware clears bit 7 and raises the Serial interrupt when the
	// transfer completes.
	SC uint16 = 0xFF02
)

// timer
const (
	// DIV exposes the upper 8 bits of the free-running divider. Any write
	// resets the whole internal counter.
	DIV uint16 = 0xFF04
	// TIMA is the timer counter; overflowing it raises the Timer interrupt.
	TIMA uint16 = 0xFF05
	// TMA is the value reloaded into TIMA after an overflow.
	TMA uint16 = 0xFF06
	// TAC enables the timer and selects the divider tap.
	TAC uint16 = 0xFF07
)

// interrupt registers
const (
	// IF is the interrupt request register. Bits 5-7 read as 1.
	IF uint16 = 0xFF0F
	// IE is the interrupt enable register.
	IE uint16 = 0xFFFF
)

// audio registers
const (
	NR10 uint16 = 0xFF10 // channel 1 sweep
	NR11 uint16 = 0xFF11 // channel 1 length / duty
	NR12 uint16 = 0xFF12 // channel 1 envelope
	NR13 uint16 = 0xFF13 // channel 1 period low
	NR14 uint16 = 0xFF14 // channel 1 period high / control

	NR21 uint16 = 0xFF16 // channel 2 length / duty
	NR22 uint16 = 0xFF17 // channel 2 envelope
	NR23 uint16 = 0xFF18 // channel 2 period low
	NR24 uint16 = 0xFF19 // channel 2 period high / control

	NR30 uint16 = 0xFF1A // channel 3 DAC enable
	NR31 uint16 = 0xFF1B // channel 3 length
	NR32 uint16 = 0xFF1C // channel 3 output level
	NR33 uint16 = 0xFF1D // channel 3 period low
	NR34 uint16 = 0xFF1E // channel 3 period high / control

	NR41 uint16 = 0xFF20 // channel 4 length
	NR42 uint16 = 0xFF21 // channel 4 envelope
	NR43 uint16 = 0xFF22 // channel 4 divisor / LFSR width
	NR44 uint16 = 0xFF23 // channel 4 control

	NR50 uint16 = 0xFF24 // master volume / VIN panning
	NR51 uint16 = 0xFF25 // channel panning matrix
	NR52 uint16 = 0xFF26 // master enable / channel status

	WaveRAMStart uint16 = 0xFF30
	WaveRAMEnd   uint16 = 0xFF3F
)

// video registers
const (
	LCDC uint16 = 0xFF40 // LCD control
	STAT uint16 = 0xFF41 // LCD status / mode
	SCY  uint16 = 0xFF42 // background scroll Y
	SCX  uint16 = 0xFF43 // background scroll X
	LY   uint16 = 0xFF44 // current scanline, read only
	LYC  uint16 = 0xFF45 // scanline compare
	DMA  uint16 = 0xFF46 // OAM DMA source page
	BGP  uint16 = 0xFF47 // background palette
	OBP0 uint16 = 0xFF48 // object palette 0
	OBP1 uint16 = 0xFF49 // object palette 1
	WY   uint16 = 0xFF4A // window Y
	WX   uint16 = 0xFF4B // window X (plus 7)
)

// VRAM layout
const (
	// TileDataUnsigned is the base for tile indices 0-255 (LCDC bit 4 = 1).
	TileDataUnsigned uint16 = 0x8000
	// TileDataSigned is the base for tile indices -128 to 127 (LCDC bit 4 = 0).
	TileDataSigned uint16 = 0x9000
	// TileMap0 is the first background/window tile map.
	TileMap0 uint16 = 0x9800
	// TileMap1 is the second background/window tile map.
	TileMap1 uint16 = 0x9C00
)

// OAM
const (
	// OAMStart is the first byte of Object Attribute Memory (40 entries, 4 bytes each).
	OAMStart uint16 = 0xFE00
	// OAMEnd is the last byte of Object Attribute Memory.
	OAMEnd uint16 = 0xFE9F
)
