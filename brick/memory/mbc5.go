package memory

import "github.com/aferranti/go-brick/brick/snapshot"

// MBC5 has a plain 9-bit ROM bank split across two registers and a 4-bit RAM
// bank. Unlike MBC1/MBC3, bank 0 is a legal selection for the switchable
// window.
type MBC5 struct {
	rom []uint8
	ram []uint8

	romBank    uint16 // 9 bits
	ramBank    uint8  // 4 bits
	ramEnabled bool
}

func NewMBC5(rom []uint8, ramSize int) *MBC5 {
	return &MBC5{
		rom:     rom,
		ram:     make([]uint8, ramSize),
		romBank: 1,
	}
}

func (m *MBC5) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x3FFF:
		return m.rom[addr]
	case addr <= 0x7FFF:
		bank := int(m.romBank) % (len(m.rom) / 0x4000)
		return m.rom[bank*0x4000+int(addr-0x4000)]
	case addr >= 0xA000 && addr <= 0xBFFF:
		offset := int(m.ramBank)*0x2000 + int(addr-0xA000)
		if !m.ramEnabled || offset >= len(m.ram) {
			return 0xFF
		}
		return m.ram[offset]
	default:
		return 0xFF
	}
}

func (m *MBC5) Write(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case addr <= 0x2FFF:
		m.romBank = m.romBank&0x100 | uint16(value)
	case addr <= 0x3FFF:
		m.romBank = m.romBank&0x0FF | uint16(value&0x01)<<8
	case addr <= 0x5FFF:
		m.ramBank = value & 0x0F
	case addr >= 0xA000 && addr <= 0xBFFF:
		offset := int(m.ramBank)*0x2000 + int(addr-0xA000)
		if m.ramEnabled && offset < len(m.ram) {
			m.ram[offset] = value
		}
	}
}

func (m *MBC5) Tick(int) {}

func (m *MBC5) RAM() []uint8 {
	if len(m.ram) == 0 {
		return nil
	}
	return m.ram
}

func (m *MBC5) Snapshot(w *snapshot.Writer) {
	w.U16(m.romBank)
	w.U8(m.ramBank)
	w.Bool(m.ramEnabled)
	w.Bytes(m.ram)
}

func (m *MBC5) Restore(r *snapshot.Reader) {
	m.romBank = r.U16()
	m.ramBank = r.U8()
	m.ramEnabled = r.Bool()
	r.ReadBytes(m.ram)
}
