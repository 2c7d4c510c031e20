package memory

import "github.com/aferranti/go-brick/brick/snapshot"

// MBC is the bank-controller interface every cartridge variant implements.
// Read and Write cover both the ROM window (0x0000-0x7FFF, where writes are
// control-register accesses) and the external RAM window (0xA000-0xBFFF).
type MBC interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)

	// Tick advances time-dependent controller state (the MBC3 RTC);
	// other controllers ignore it.
	Tick(cycles int)

	// RAM exposes the external RAM backing store for battery persistence.
	// Controllers without RAM return nil.
	RAM() []byte

	// Snapshot and Restore serialize the controller's mutable state
	// (bank registers, RAM contents, RTC) in a fixed field order.
	Snapshot(w *snapshot.Writer)
	Restore(r *snapshot.Reader)
}

// NoMBC is the straight-mapped 32 KiB cartridge: no banking, optional 8 KiB
// of external RAM (type bytes 0x08/0x09).
type NoMBC struct {
	rom        []uint8
	ram        []uint8
	ramEnabled bool
}

func NewNoMBC(rom []uint8, ramSize int) *NoMBC {
	return &NoMBC{
		rom: rom,
		ram: make([]uint8, ramSize),
	}
}

func (m *NoMBC) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x7FFF:
		if int(addr) < len(m.rom) {
			return m.rom[addr]
		}
		return 0xFF
	case addr >= 0xA000 && addr <= 0xBFFF:
		offset := int(addr - 0xA000)
		if !m.ramEnabled || offset >= len(m.ram) {
			return 0xFF
		}
		return m.ram[offset]
	default:
		return 0xFF
	}
}

func (m *NoMBC) Write(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case addr >= 0xA000 && addr <= 0xBFFF:
		offset := int(addr - 0xA000)
		if m.ramEnabled && offset < len(m.ram) {
			m.ram[offset] = value
		}
	}
}

func (m *NoMBC) Tick(int) {}

func (m *NoMBC) RAM() []uint8 {
	if len(m.ram) == 0 {
		return nil
	}
	return m.ram
}

func (m *NoMBC) Snapshot(w *snapshot.Writer) {
	w.Bool(m.ramEnabled)
	w.Bytes(m.ram)
}

func (m *NoMBC) Restore(r *snapshot.Reader) {
	m.ramEnabled = r.Bool()
	r.ReadBytes(m.ram)
}
