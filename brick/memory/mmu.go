// Package memory implements the unified 16-bit address space: routing to the
// cartridge, VRAM/OAM (owned by the video unit), work RAM and its echo, the
// I/O register dispatch, HRAM and IE — plus the timer, joypad and OAM DMA
// engine that live behind those registers.
package memory

import (
	"github.com/aferranti/go-brick/brick/addr"
	"github.com/aferranti/go-brick/brick/audio"
	"github.com/aferranti/go-brick/brick/bit"
	"github.com/aferranti/go-brick/brick/interrupt"
	"github.com/aferranti/go-brick/brick/snapshot"
	"github.com/aferranti/go-brick/brick/video"
)

// SerialPort is the minimal interface for a device attached to SB/SC.
// Implementations only ever see reads and writes for those two addresses.
type SerialPort interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Tick(cycles int)
	Reset()
}

// MMU mediates every cross-component memory access. It owns WRAM, HRAM, the
// timer, the joypad and the DMA engine; VRAM, OAM and the display registers
// live in the video unit, the sound registers in the audio unit.
type MMU struct {
	cart   *Cartridge
	irq    *interrupt.Controller
	gpu    *video.GPU
	apu    *audio.APU
	serial SerialPort
	timer  *Timer
	joypad *Joypad
	dma    oamDMA

	wram [0x2000]uint8
	hram [0x7F]uint8
}

// New wires an MMU to its collaborators. The video and audio units are
// created by the emulator driver and shared here for register dispatch.
func New(cart *Cartridge, irq *interrupt.Controller, gpu *video.GPU, apu *audio.APU, serial SerialPort) *MMU {
	return &MMU{
		cart:   cart,
		irq:    irq,
		gpu:    gpu,
		apu:    apu,
		serial: serial,
		timer:  NewTimer(irq),
		joypad: NewJoypad(irq),
	}
}

// Reset clears all MMU-owned state. The cartridge (ROM and battery RAM) is
// deliberately left alone.
func (m *MMU) Reset() {
	m.wram = [0x2000]uint8{}
	m.hram = [0x7F]uint8{}
	m.dma = oamDMA{}
	m.timer.Reset()
	m.joypad.Reset()
	m.serial.Reset()
}

// Tick advances the memory-mapped peripherals that need a clock: the timer,
// the DMA countdown, the serial port and the cartridge RTC.
func (m *MMU) Tick(cycles int) {
	m.timer.Tick(cycles)
	m.dma.Tick(cycles)
	m.serial.Tick(cycles)
	m.cart.Tick(cycles)
}

func (m *MMU) Joypad() *Joypad { return m.joypad }

func (m *MMU) Cartridge() *Cartridge { return m.cart }

// DMAActive reports whether an OAM DMA transfer is still shielding OAM.
func (m *MMU) DMAActive() bool { return m.dma.Active() }

func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address <= 0x7FFF:
		return m.cart.Read(address)
	case address <= 0x9FFF:
		return m.gpu.CPUReadVRAM(address)
	case address <= 0xBFFF:
		return m.cart.Read(address)
	case address <= 0xDFFF:
		return m.wram[address-0xC000]
	case address <= 0xFDFF:
		// echo RAM mirrors WRAM with a 0x2000 offset
		return m.wram[address-0xE000]
	case address <= 0xFE9F:
		if m.dma.Active() {
			return 0xFF
		}
		return m.gpu.CPUReadOAM(address)
	case address <= 0xFEFF:
		// prohibited region
		return 0xFF
	case address <= 0xFF7F:
		return m.readIO(address)
	case address <= 0xFFFE:
		return m.hram[address-0xFF80]
	default:
		return m.irq.ReadEnable()
	}
}

func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address <= 0x7FFF:
		m.cart.Write(address, value)
	case address <= 0x9FFF:
		m.gpu.CPUWriteVRAM(address, value)
	case address <= 0xBFFF:
		m.cart.Write(address, value)
	case address <= 0xDFFF:
		m.wram[address-0xC000] = value
	case address <= 0xFDFF:
		m.wram[address-0xE000] = value
	case address <= 0xFE9F:
		if m.dma.Active() {
			return
		}
		m.gpu.CPUWriteOAM(address, value)
	case address <= 0xFEFF:
		// prohibited region, writes dropped
	case address <= 0xFF7F:
		m.writeIO(address, value)
	case address <= 0xFFFE:
		m.hram[address-0xFF80] = value
	default:
		m.irq.WriteEnable(value)
	}
}

// Read16 reads a little-endian word.
func (m *MMU) Read16(address uint16) uint16 {
	return bit.Combine(m.Read(address+1), m.Read(address))
}

// Write16 writes a little-endian word.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, bit.Low(value))
	m.Write(address+1, bit.High(value))
}

func (m *MMU) readIO(address uint16) uint8 {
	switch {
	case address == addr.P1:
		return m.joypad.Read()
	case address == addr.SB || address == addr.SC:
		return m.serial.Read(address)
	case address >= addr.DIV && address <= addr.TAC:
		return m.timer.Read(address)
	case address == addr.IF:
		return m.irq.ReadFlags()
	case address >= addr.NR10 && address <= addr.WaveRAMEnd:
		return m.apu.ReadRegister(address)
	case address == addr.DMA:
		return m.dma.source
	case address >= addr.LCDC && address <= addr.WX:
		return m.gpu.ReadRegister(address)
	default:
		// unmapped I/O reads as open bus
		return 0xFF
	}
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch {
	case address == addr.P1:
		m.joypad.Write(value)
	case address == addr.SB || address == addr.SC:
		m.serial.Write(address, value)
	case address >= addr.DIV && address <= addr.TAC:
		m.timer.Write(address, value)
	case address == addr.IF:
		m.irq.WriteFlags(value)
	case address >= addr.NR10 && address <= addr.WaveRAMEnd:
		m.apu.WriteRegister(address, value)
	case address == addr.DMA:
		m.dma.start(m, value)
	case address >= addr.LCDC && address <= addr.WX:
		m.gpu.WriteRegister(address, value)
	}
}

// Snapshot serializes all MMU-owned mutable state.
func (m *MMU) Snapshot(w *snapshot.Writer) {
	w.Bytes(m.wram[:])
	w.Bytes(m.hram[:])
	m.timer.Snapshot(w)
	m.joypad.Snapshot(w)
	m.dma.Snapshot(w)
	m.cart.Snapshot(w)
}

func (m *MMU) Restore(r *snapshot.Reader) {
	r.ReadBytes(m.wram[:])
	r.ReadBytes(m.hram[:])
	m.timer.Restore(r)
	m.joypad.Restore(r)
	m.dma.Restore(r)
	m.cart.Restore(r)
}
