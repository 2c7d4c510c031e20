package memory

import (
	"github.com/aferranti/go-brick/brick/snapshot"
	"github.com/aferranti/go-brick/brick/timing"
)

// rtcClock holds the MBC3 real-time clock counters. Time advances from
// emulated cycles, not the host clock, so runs stay deterministic.
type rtcClock struct {
	seconds uint8
	minutes uint8
	hours   uint8
	days    uint16 // 9 bits; overflow sets the carry flag
	halted  bool
	carry   bool

	cycleAcc int
}

func (c *rtcClock) tick(cycles int) {
	if c.halted {
		return
	}
	c.cycleAcc += cycles
	for c.cycleAcc >= timing.CPUFrequency {
		c.cycleAcc -= timing.CPUFrequency
		c.advanceSecond()
	}
}

func (c *rtcClock) advanceSecond() {
	c.seconds++
	if c.seconds < 60 {
		return
	}
	c.seconds = 0
	c.minutes++
	if c.minutes < 60 {
		return
	}
	c.minutes = 0
	c.hours++
	if c.hours < 24 {
		return
	}
	c.hours = 0
	c.days++
	if c.days > 0x1FF {
		c.days = 0
		c.carry = true
	}
}

// register reads/writes use the MBC3 register indices 0x08-0x0C.
func (c *rtcClock) read(reg uint8) uint8 {
	switch reg {
	case 0x08:
		return c.seconds
	case 0x09:
		return c.minutes
	case 0x0A:
		return c.hours
	case 0x0B:
		return uint8(c.days)
	case 0x0C:
		value := uint8(c.days>>8) & 0x01
		if c.halted {
			value |= 0x40
		}
		if c.carry {
			value |= 0x80
		}
		return value
	}
	return 0xFF
}

func (c *rtcClock) write(reg, value uint8) {
	switch reg {
	case 0x08:
		c.seconds = value & 0x3F
		c.cycleAcc = 0
	case 0x09:
		c.minutes = value & 0x3F
	case 0x0A:
		c.hours = value & 0x1F
	case 0x0B:
		c.days = c.days&0x100 | uint16(value)
	case 0x0C:
		c.days = c.days&0xFF | uint16(value&0x01)<<8
		c.halted = value&0x40 != 0
		c.carry = value&0x80 != 0
	}
}

// MBC3 adds a 7-bit ROM bank register and the RTC. Register indices 0x08-0x0C
// at 0x4000 map the clock into the external RAM window; a 0x00 then 0x01
// write at 0x6000 latches a snapshot that reads return until the next latch.
type MBC3 struct {
	rom []uint8
	ram []uint8

	romBank    uint8
	ramSelect  uint8 // 0x00-0x03 RAM bank, 0x08-0x0C RTC register
	ramEnabled bool

	hasRTC   bool
	clock    rtcClock
	latched  rtcClock
	latchArm bool // last write to 0x6000 was 0x00
}

func NewMBC3(rom []uint8, ramSize int, hasRTC bool) *MBC3 {
	return &MBC3{
		rom:     rom,
		ram:     make([]uint8, ramSize),
		romBank: 1,
		hasRTC:  hasRTC,
	}
}

func (m *MBC3) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x3FFF:
		return m.rom[addr]
	case addr <= 0x7FFF:
		bank := int(m.romBank) % (len(m.rom) / 0x4000)
		return m.rom[bank*0x4000+int(addr-0x4000)]
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled {
			return 0xFF
		}
		if m.ramSelect >= 0x08 {
			if !m.hasRTC {
				return 0xFF
			}
			return m.latched.read(m.ramSelect)
		}
		offset := int(m.ramSelect)*0x2000 + int(addr-0xA000)
		if offset >= len(m.ram) {
			return 0xFF
		}
		return m.ram[offset]
	default:
		return 0xFF
	}
}

func (m *MBC3) Write(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case addr <= 0x3FFF:
		bank := value & 0x7F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case addr <= 0x5FFF:
		if value <= 0x03 || (value >= 0x08 && value <= 0x0C) {
			m.ramSelect = value
		}
	case addr <= 0x7FFF:
		// latch sequence: 0x00 then 0x01
		if value == 0x00 {
			m.latchArm = true
		} else if value == 0x01 && m.latchArm {
			m.latched = m.clock
			m.latchArm = false
		} else {
			m.latchArm = false
		}
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled {
			return
		}
		if m.ramSelect >= 0x08 {
			if m.hasRTC {
				m.clock.write(m.ramSelect, value)
			}
			return
		}
		offset := int(m.ramSelect)*0x2000 + int(addr-0xA000)
		if offset < len(m.ram) {
			m.ram[offset] = value
		}
	}
}

func (m *MBC3) Tick(cycles int) {
	if m.hasRTC {
		m.clock.tick(cycles)
	}
}

func (m *MBC3) RAM() []uint8 {
	if len(m.ram) == 0 {
		return nil
	}
	return m.ram
}

func (m *MBC3) Snapshot(w *snapshot.Writer) {
	w.U8(m.romBank)
	w.U8(m.ramSelect)
	w.Bool(m.ramEnabled)
	w.Bool(m.latchArm)
	for _, c := range []*rtcClock{&m.clock, &m.latched} {
		w.U8(c.seconds)
		w.U8(c.minutes)
		w.U8(c.hours)
		w.U16(c.days)
		w.Bool(c.halted)
		w.Bool(c.carry)
		w.U32(uint32(c.cycleAcc))
	}
	w.Bytes(m.ram)
}

func (m *MBC3) Restore(r *snapshot.Reader) {
	m.romBank = r.U8()
	m.ramSelect = r.U8()
	m.ramEnabled = r.Bool()
	m.latchArm = r.Bool()
	for _, c := range []*rtcClock{&m.clock, &m.latched} {
		c.seconds = r.U8()
		c.minutes = r.U8()
		c.hours = r.U8()
		c.days = r.U16()
		c.halted = r.Bool()
		c.carry = r.Bool()
		c.cycleAcc = int(r.U32())
	}
	r.ReadBytes(m.ram)
}
