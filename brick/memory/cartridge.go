package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/aferranti/go-brick/brick/snapshot"
)

// Construction errors surfaced by NewCartridge.
var (
	ErrInvalidHeader  = errors.New("invalid cartridge header")
	ErrUnsupportedMBC = errors.New("unsupported memory bank controller")
)

// header field offsets
const (
	titleAddress          = 0x0134
	titleLength           = 11
	cartridgeTypeAddress  = 0x0147
	romSizeAddress        = 0x0148
	ramSizeAddress        = 0x0149
	versionNumberAddress  = 0x014C
	headerChecksumAddress = 0x014D
	headerEnd             = 0x014F
)

// Header is the parsed cartridge header, kept for diagnostics.
type Header struct {
	Title      string
	Type       uint8
	ROMBanks   int
	RAMSize    int
	Version    uint8
	HasBattery bool
	HasRTC     bool
	ChecksumOK bool
}

// Cartridge owns the ROM image and the bank controller chosen from the
// header type byte.
type Cartridge struct {
	rom    []uint8
	mbc    MBC
	header Header
}

// NewCartridge parses the header of the given ROM image and attaches the
// matching bank controller. It fails with ErrInvalidHeader when the image is
// too short for its header or for its declared ROM size, and with
// ErrUnsupportedMBC for controller types outside the supported set.
func NewCartridge(rom []uint8) (*Cartridge, error) {
	if len(rom) <= headerEnd {
		return nil, fmt.Errorf("%w: %d bytes, no room for a header", ErrInvalidHeader, len(rom))
	}

	banks, err := decodeROMBanks(rom[romSizeAddress])
	if err != nil {
		return nil, err
	}
	if len(rom) < banks*0x4000 {
		return nil, fmt.Errorf("%w: header declares %d banks but image has %d bytes",
			ErrInvalidHeader, banks, len(rom))
	}

	ramSize, err := decodeRAMSize(rom[ramSizeAddress])
	if err != nil {
		return nil, err
	}

	cartType := rom[cartridgeTypeAddress]
	header := Header{
		Title:      cleanTitle(rom[titleAddress : titleAddress+titleLength]),
		Type:       cartType,
		ROMBanks:   banks,
		RAMSize:    ramSize,
		Version:    rom[versionNumberAddress],
		HasBattery: hasBattery(cartType),
		HasRTC:     hasRTC(cartType),
		ChecksumOK: headerChecksumOK(rom),
	}

	cart := &Cartridge{rom: rom, header: header}

	switch cartType {
	case 0x00, 0x08, 0x09:
		cart.mbc = NewNoMBC(rom, ramSize)
	case 0x01, 0x02, 0x03:
		cart.mbc = NewMBC1(rom, ramSize)
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		cart.mbc = NewMBC3(rom, ramSize, header.HasRTC)
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		cart.mbc = NewMBC5(rom, ramSize)
	default:
		return nil, fmt.Errorf("%w: type byte 0x%02X", ErrUnsupportedMBC, cartType)
	}

	slog.Debug("Cartridge loaded",
		"title", header.Title,
		"type", fmt.Sprintf("0x%02X", cartType),
		"rom_banks", banks,
		"ram_bytes", ramSize,
		"battery", header.HasBattery,
		"checksum_ok", header.ChecksumOK)

	return cart, nil
}

func (c *Cartridge) Header() Header { return c.header }

// Read serves both the ROM windows and the external RAM window.
func (c *Cartridge) Read(addr uint16) uint8 {
	return c.mbc.Read(addr)
}

// Write routes control-register and external RAM writes to the controller.
func (c *Cartridge) Write(addr uint16, value uint8) {
	c.mbc.Write(addr, value)
}

// Tick advances the controller clock (MBC3 RTC).
func (c *Cartridge) Tick(cycles int) {
	c.mbc.Tick(cycles)
}

// BatteryRAM returns a copy of the save RAM, or nil when the cartridge has
// no battery.
func (c *Cartridge) BatteryRAM() []uint8 {
	if !c.header.HasBattery {
		return nil
	}
	ram := c.mbc.RAM()
	if ram == nil {
		return nil
	}
	out := make([]uint8, len(ram))
	copy(out, ram)
	return out
}

// LoadBatteryRAM restores previously saved RAM contents. Data for a
// cartridge without a battery is silently dropped; a partial blob fills
// what it covers.
func (c *Cartridge) LoadBatteryRAM(data []uint8) {
	if !c.header.HasBattery {
		slog.Debug("Ignoring battery RAM for cartridge without battery")
		return
	}
	ram := c.mbc.RAM()
	if ram == nil {
		return
	}
	copy(ram, data)
}

// Snapshot serializes the controller state (bank registers, RAM, RTC).
// The ROM itself is not part of save states.
func (c *Cartridge) Snapshot(w *snapshot.Writer) {
	c.mbc.Snapshot(w)
}

func (c *Cartridge) Restore(r *snapshot.Reader) {
	c.mbc.Restore(r)
}

func decodeROMBanks(code uint8) (int, error) {
	if code > 0x08 {
		return 0, fmt.Errorf("%w: ROM size code 0x%02X", ErrInvalidHeader, code)
	}
	return 2 << code, nil
}

func decodeRAMSize(code uint8) (int, error) {
	switch code {
	case 0x00:
		return 0, nil
	case 0x01:
		return 2 * 1024, nil
	case 0x02:
		return 8 * 1024, nil
	case 0x03:
		return 32 * 1024, nil
	case 0x04:
		return 128 * 1024, nil
	case 0x05:
		return 64 * 1024, nil
	default:
		return 0, fmt.Errorf("%w: RAM size code 0x%02X", ErrInvalidHeader, code)
	}
}

func hasBattery(cartType uint8) bool {
	switch cartType {
	case 0x03, 0x09, 0x0F, 0x10, 0x13, 0x1B, 0x1E:
		return true
	}
	return false
}

func hasRTC(cartType uint8) bool {
	return cartType == 0x0F || cartType == 0x10
}

func headerChecksumOK(rom []uint8) bool {
	var sum uint8
	for addr := 0x0134; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	return sum == rom[headerChecksumAddress]
}

// cleanTitle turns the raw title bytes into printable ASCII, replacing NULs
// with spaces and anything unprintable with '?'.
func cleanTitle(raw []uint8) string {
	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		r := rune(b)
		switch {
		case r == 0:
			r = ' '
		case !unicode.IsPrint(r):
			r = '?'
		}
		runes = append(runes, r)
	}
	return strings.TrimSpace(string(runes))
}
