// Package video implements the PPU: the LCD mode state machine, the
// scanline renderer for background, window and sprites, and the display
// register file including VRAM and OAM with their access windows.
package video

import (
	"github.com/aferranti/go-brick/brick/addr"
	"github.com/aferranti/go-brick/brick/bit"
	"github.com/aferranti/go-brick/brick/interrupt"
	"github.com/aferranti/go-brick/brick/snapshot"
)

// Mode is the PPU rendering stage, matching STAT bits 1-0.
type Mode uint8

const (
	ModeHBlank        Mode = 0
	ModeVBlank        Mode = 1
	ModeOAMScan       Mode = 2
	ModePixelTransfer Mode = 3
)

// Mode lengths in dots (T-cycles). Pixel transfer uses a fixed 172 dots:
// SCX%8 and sprite fetch penalties do not stretch it in this implementation.
const (
	oamScanDots       = 80
	pixelTransferDots = 172
	hblankDots        = 204
	scanlineDots      = oamScanDots + pixelTransferDots + hblankDots

	visibleLines = FrameHeight
	totalLines   = 154

	maxSpritesPerLine = 10
)

// LCDC bit indices.
const (
	lcdcBGEnable uint8 = iota
	lcdcSpriteEnable
	lcdcSpriteSize
	lcdcBGTileMap
	lcdcTileData
	lcdcWindowEnable
	lcdcWindowTileMap
	lcdcDisplayEnable
)

// STAT bit indices (bits 3-6 are the writable interrupt selects).
const (
	statHBlankIRQ uint8 = 3
	statVBlankIRQ uint8 = 4
	statOAMIRQ    uint8 = 5
	statLYCIRQ    uint8 = 6
)

// GPU owns VRAM, OAM and the display registers, and walks the mode state
// machine as the emulator feeds it cycles. Rendering happens a whole
// scanline at a time when pixel transfer completes.
type GPU struct {
	irq *interrupt.Controller

	vram [0x2000]uint8
	oam  [0xA0]uint8

	fb      *FrameBuffer
	bgLine  [FrameWidth]uint8 // raw (pre-palette) background indices of the current line
	sprites spritePriority

	mode       Mode
	line       int
	dot        int
	windowLine int
	statLine   bool // current level of the shared STAT interrupt line
	frameReady bool

	lcdc uint8
	stat uint8 // writable bits 3-6 only
	scy  uint8
	scx  uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8
}

func New(irq *interrupt.Controller) *GPU {
	g := &GPU{irq: irq, fb: NewFrameBuffer()}
	g.Reset()
	return g
}

// Reset restores the post-BIOS register values and puts the machine at the
// start of the frame: LY=0, OAM scan, dot 0.
func (g *GPU) Reset() {
	g.vram = [0x2000]uint8{}
	g.oam = [0xA0]uint8{}
	g.fb.Clear()
	g.mode = ModeOAMScan
	g.line = 0
	g.dot = 0
	g.windowLine = 0
	g.statLine = false
	g.frameReady = false

	g.lcdc = 0x91
	g.stat = 0x00
	g.scy, g.scx = 0, 0
	g.lyc = 0
	g.bgp = 0xFC
	g.obp0, g.obp1 = 0xFF, 0xFF
	g.wy, g.wx = 0, 0
}

func (g *GPU) Mode() Mode { return g.mode }

func (g *GPU) Line() int { return g.line }

// FrameBuffer returns the buffer the renderer draws into. It is complete
// once ConsumeFrame reports a VBlank entry.
func (g *GPU) FrameBuffer() *FrameBuffer { return g.fb }

// ConsumeFrame reports whether the PPU entered VBlank since the last call
// and clears the flag.
func (g *GPU) ConsumeFrame() bool {
	ready := g.frameReady
	g.frameReady = false
	return ready
}

func (g *GPU) lcdEnabled() bool {
	return bit.IsSet(lcdcDisplayEnable, g.lcdc)
}

// Enabled reports whether the LCD is switched on (LCDC bit 7).
func (g *GPU) Enabled() bool {
	return g.lcdEnabled()
}

// Tick advances the mode machine by the given cycle count, crossing as many
// mode boundaries as the budget covers.
func (g *GPU) Tick(cycles int) {
	if !g.lcdEnabled() {
		return
	}

	g.dot += cycles

	for {
		switch g.mode {
		case ModeOAMScan:
			if g.dot < oamScanDots {
				return
			}
			g.dot -= oamScanDots
			g.setMode(ModePixelTransfer)

		case ModePixelTransfer:
			if g.dot < pixelTransferDots {
				return
			}
			g.dot -= pixelTransferDots
			g.renderScanline()
			g.setMode(ModeHBlank)

		case ModeHBlank:
			if g.dot < hblankDots {
				return
			}
			g.dot -= hblankDots
			g.setLine(g.line + 1)
			if g.line == visibleLines {
				g.setMode(ModeVBlank)
				g.irq.Request(interrupt.VBlank)
				g.frameReady = true
			} else {
				g.setMode(ModeOAMScan)
			}

		case ModeVBlank:
			if g.dot < scanlineDots {
				return
			}
			g.dot -= scanlineDots
			if g.line == totalLines-1 {
				g.setLine(0)
				g.windowLine = 0
				g.setMode(ModeOAMScan)
			} else {
				g.setLine(g.line + 1)
			}
		}
	}
}

func (g *GPU) setMode(mode Mode) {
	g.mode = mode
	g.updateSTATLine()
}

func (g *GPU) setLine(line int) {
	g.line = line
	g.updateSTATLine()
}

// updateSTATLine recomputes the shared STAT interrupt line and requests the
// interrupt only on a low-to-high transition. Keeping one line for all
// sources gives the hardware's STAT blocking: back-to-back conditions
// without a gap fire once.
func (g *GPU) updateSTATLine() {
	high := false
	switch g.mode {
	case ModeHBlank:
		high = bit.IsSet(statHBlankIRQ, g.stat)
	case ModeVBlank:
		high = bit.IsSet(statVBlankIRQ, g.stat)
	case ModeOAMScan:
		high = bit.IsSet(statOAMIRQ, g.stat)
	}
	if int(g.lyc) == g.line && bit.IsSet(statLYCIRQ, g.stat) {
		high = true
	}

	if high && !g.statLine {
		g.irq.Request(interrupt.LCDStat)
	}
	g.statLine = high
}

// CPU-facing VRAM and OAM access with the hardware lockout windows.
// VRAM is unreadable during pixel transfer; OAM during OAM scan and pixel
// transfer. Blocked reads see 0xFF, blocked writes are dropped.

func (g *GPU) CPUReadVRAM(address uint16) uint8 {
	if g.lcdEnabled() && g.mode == ModePixelTransfer {
		return 0xFF
	}
	return g.vram[address-0x8000]
}

func (g *GPU) CPUWriteVRAM(address uint16, value uint8) {
	if g.lcdEnabled() && g.mode == ModePixelTransfer {
		return
	}
	g.vram[address-0x8000] = value
}

func (g *GPU) CPUReadOAM(address uint16) uint8 {
	if g.lcdEnabled() && (g.mode == ModeOAMScan || g.mode == ModePixelTransfer) {
		return 0xFF
	}
	return g.oam[address-addr.OAMStart]
}

func (g *GPU) CPUWriteOAM(address uint16, value uint8) {
	if g.lcdEnabled() && (g.mode == ModeOAMScan || g.mode == ModePixelTransfer) {
		return
	}
	g.oam[address-addr.OAMStart] = value
}

// WriteOAMByte is the DMA engine's direct path; it bypasses the CPU lockout.
func (g *GPU) WriteOAMByte(index int, value uint8) {
	g.oam[index] = value
}

func (g *GPU) ReadRegister(address uint16) uint8 {
	switch address {
	case addr.LCDC:
		return g.lcdc
	case addr.STAT:
		value := 0x80 | g.stat
		if int(g.lyc) == g.line {
			value = bit.Set(2, value)
		}
		if g.lcdEnabled() {
			value |= uint8(g.mode)
		}
		return value
	case addr.SCY:
		return g.scy
	case addr.SCX:
		return g.scx
	case addr.LY:
		return uint8(g.line)
	case addr.LYC:
		return g.lyc
	case addr.BGP:
		return g.bgp
	case addr.OBP0:
		return g.obp0
	case addr.OBP1:
		return g.obp1
	case addr.WY:
		return g.wy
	case addr.WX:
		return g.wx
	}
	return 0xFF
}

func (g *GPU) WriteRegister(address uint16, value uint8) {
	switch address {
	case addr.LCDC:
		wasEnabled := g.lcdEnabled()
		g.lcdc = value
		if wasEnabled && !g.lcdEnabled() {
			// turning the LCD off blanks the screen and parks the
			// machine at the top of the frame
			g.fb.Clear()
			g.line = 0
			g.dot = 0
			g.mode = ModeHBlank
			g.statLine = false
		} else if !wasEnabled && g.lcdEnabled() {
			g.line = 0
			g.dot = 0
			g.windowLine = 0
			g.setMode(ModeOAMScan)
		}
	case addr.STAT:
		g.stat = value & 0x78
		g.updateSTATLine()
	case addr.SCY:
		g.scy = value
	case addr.SCX:
		g.scx = value
	case addr.LY:
		// read only
	case addr.LYC:
		g.lyc = value
		g.updateSTATLine()
	case addr.BGP:
		g.bgp = value
	case addr.OBP0:
		g.obp0 = value
	case addr.OBP1:
		g.obp1 = value
	case addr.WY:
		g.wy = value
	case addr.WX:
		g.wx = value
	}
}

// Snapshot serializes all PPU state including VRAM, OAM and the framebuffer
// so a restored state resumes mid-frame exactly.
func (g *GPU) Snapshot(w *snapshot.Writer) {
	w.Bytes(g.vram[:])
	w.Bytes(g.oam[:])
	w.Bytes(g.fb.shades[:])
	w.U8(uint8(g.mode))
	w.U16(uint16(g.line))
	w.U16(uint16(g.dot))
	w.U16(uint16(g.windowLine))
	w.Bool(g.statLine)
	w.Bool(g.frameReady)
	for _, reg := range []uint8{g.lcdc, g.stat, g.scy, g.scx, g.lyc, g.bgp, g.obp0, g.obp1, g.wy, g.wx} {
		w.U8(reg)
	}
}

func (g *GPU) Restore(r *snapshot.Reader) {
	r.ReadBytes(g.vram[:])
	r.ReadBytes(g.oam[:])
	r.ReadBytes(g.fb.shades[:])
	g.mode = Mode(r.U8())
	g.line = int(r.U16())
	g.dot = int(r.U16())
	g.windowLine = int(r.U16())
	g.statLine = r.Bool()
	g.frameReady = r.Bool()
	regs := []*uint8{&g.lcdc, &g.stat, &g.scy, &g.scx, &g.lyc, &g.bgp, &g.obp0, &g.obp1, &g.wy, &g.wx}
	for _, reg := range regs {
		*reg = r.U8()
	}
}
