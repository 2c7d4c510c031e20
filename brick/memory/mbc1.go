package memory

import "github.com/aferranti/go-brick/brick/snapshot"

// MBC1 supports up to 2 MB of ROM and 32 KiB of RAM. The 5-bit bank register
// at 0x2000 never selects bank 0 (writing 0 selects 1); a 2-bit register at
// 0x4000 supplies either the high ROM bank bits or the RAM bank, depending on
// the mode bit at 0x6000. In advanced banking mode the fixed 0x0000-0x3FFF
// window itself is remapped to (high << 5) on large cartridges.
type MBC1 struct {
	rom []uint8
	ram []uint8

	bankLow    uint8 // 5-bit register at 0x2000-0x3FFF
	bankHigh   uint8 // 2-bit register at 0x4000-0x5FFF
	mode       uint8 // 0 = ROM banking, 1 = advanced/RAM banking
	ramEnabled bool
}

func NewMBC1(rom []uint8, ramSize int) *MBC1 {
	return &MBC1{
		rom:     rom,
		ram:     make([]uint8, ramSize),
		bankLow: 1,
	}
}

func (m *MBC1) romBankCount() int {
	return len(m.rom) / 0x4000
}

// lowBank is the bank mapped at 0x0000-0x3FFF: always 0 in mode 0, the
// high-register bank in advanced mode.
func (m *MBC1) lowBank() int {
	if m.mode == 0 {
		return 0
	}
	return (int(m.bankHigh) << 5) % m.romBankCount()
}

// highBank is the bank mapped at 0x4000-0x7FFF.
func (m *MBC1) highBank() int {
	bank := int(m.bankHigh)<<5 | int(m.bankLow)
	return bank % m.romBankCount()
}

func (m *MBC1) ramOffset(addr uint16) int {
	bank := 0
	if m.mode == 1 {
		bank = int(m.bankHigh)
	}
	return bank*0x2000 + int(addr-0xA000)
}

func (m *MBC1) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x3FFF:
		return m.rom[m.lowBank()*0x4000+int(addr)]
	case addr <= 0x7FFF:
		return m.rom[m.highBank()*0x4000+int(addr-0x4000)]
	case addr >= 0xA000 && addr <= 0xBFFF:
		offset := m.ramOffset(addr)
		if !m.ramEnabled || offset >= len(m.ram) {
			return 0xFF
		}
		return m.ram[offset]
	default:
		return 0xFF
	}
}

func (m *MBC1) Write(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case addr <= 0x3FFF:
		bank := value & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.bankLow = bank
	case addr <= 0x5FFF:
		m.bankHigh = value & 0x03
	case addr <= 0x7FFF:
		m.mode = value & 0x01
	case addr >= 0xA000 && addr <= 0xBFFF:
		offset := m.ramOffset(addr)
		if m.ramEnabled && offset < len(m.ram) {
			m.ram[offset] = value
		}
	}
}

func (m *MBC1) Tick(int) {}

func (m *MBC1) RAM() []uint8 {
	if len(m.ram) == 0 {
		return nil
	}
	return m.ram
}

func (m *MBC1) Snapshot(w *snapshot.Writer) {
	w.U8(m.bankLow)
	w.U8(m.bankHigh)
	w.U8(m.mode)
	w.Bool(m.ramEnabled)
	w.Bytes(m.ram)
}

func (m *MBC1) Restore(r *snapshot.Reader) {
	m.bankLow = r.U8()
	m.bankHigh = r.U8()
	m.mode = r.U8()
	m.ramEnabled = r.Bool()
	r.ReadBytes(m.ram)
}
