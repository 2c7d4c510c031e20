// Package interrupt implements the IF/IE pair and the priority arbitration
// the CPU uses when deciding which request to service.
package interrupt

// Kind identifies one of the five interrupt sources, ordered by priority
// (VBlank is bit 0 and wins ties).
type Kind uint8

const (
	VBlank Kind = iota
	LCDStat
	Timer
	Serial
	Joypad

	kindCount
)

// Vector returns the service routine address for the interrupt.
func (k Kind) Vector() uint16 {
	return 0x40 + uint16(k)*8
}

func (k Kind) String() string {
	switch k {
	case VBlank:
		return "vblank"
	case LCDStat:
		return "stat"
	case Timer:
		return "timer"
	case Serial:
		return "serial"
	case Joypad:
		return "joypad"
	}
	return "unknown"
}

// Controller holds the IF and IE registers. Only bits 0-4 of IF are backed by
// storage; the upper three always read as 1.
type Controller struct {
	flags  uint8 // IF bits 0-4
	enable uint8 // IE, all 8 bits writable
}

// Request sets the IF bit for the given source.
func (c *Controller) Request(k Kind) {
	c.flags |= 1 << k
}

// Pending returns the highest-priority requested and enabled interrupt.
// The second return is false when nothing is serviceable.
func (c *Controller) Pending() (Kind, bool) {
	masked := c.flags & c.enable & 0x1F
	if masked == 0 {
		return 0, false
	}
	for k := VBlank; k < kindCount; k++ {
		if masked&(1<<k) != 0 {
			return k, true
		}
	}
	return 0, false
}

// AnyPending reports whether IF & IE has any bit set. This is the HALT
// wake-up condition: both registers participate, not IF alone.
func (c *Controller) AnyPending() bool {
	return c.flags&c.enable&0x1F != 0
}

// Accept clears the IF bit for the interrupt being serviced.
func (c *Controller) Accept(k Kind) {
	c.flags &^= 1 << k
}

// ReadFlags returns IF with bits 5-7 forced high.
func (c *Controller) ReadFlags() uint8 {
	return c.flags | 0xE0
}

// WriteFlags stores only the low five bits of IF.
func (c *Controller) WriteFlags(value uint8) {
	c.flags = value & 0x1F
}

// ReadEnable returns IE.
func (c *Controller) ReadEnable() uint8 {
	return c.enable
}

// WriteEnable stores IE.
func (c *Controller) WriteEnable(value uint8) {
	c.enable = value
}

// Reset restores the post-BIOS state: the boot ROM leaves a VBlank request
// behind and nothing enabled.
func (c *Controller) Reset() {
	c.flags = 0x01
	c.enable = 0x00
}
