package video

import "github.com/aferranti/go-brick/brick/bit"

// The renderer composes one scanline at a time into the framebuffer when the
// pixel-transfer window for that line closes: background, then window, then
// sprites. bgLine keeps the raw (pre-palette) background indices so sprite
// background-priority can test "BG color != 0" against the right values.

func paletteShade(palette, raw uint8) uint8 {
	return palette >> (raw * 2) & 0x03
}

func (g *GPU) renderScanline() {
	for i := range g.bgLine {
		g.bgLine[i] = 0
	}

	if bit.IsSet(lcdcBGEnable, g.lcdc) {
		g.drawBackground()
	} else {
		// with BG disabled the line shows palette color 0
		shade := paletteShade(g.bgp, 0)
		for x := 0; x < FrameWidth; x++ {
			g.fb.setPixel(x, g.line, shade)
		}
	}

	if bit.IsSet(lcdcWindowEnable, g.lcdc) {
		g.drawWindow()
	}

	if bit.IsSet(lcdcSpriteEnable, g.lcdc) {
		g.drawSprites()
	}
}

// tileRowPlanes fetches the two bit planes of one tile row, resolving the
// signed/unsigned tile-data addressing from LCDC bit 4.
func (g *GPU) tileRowPlanes(tileIndex uint8, row int) (low, high uint8) {
	var offset int
	if bit.IsSet(lcdcTileData, g.lcdc) {
		offset = int(tileIndex) * 16
	} else {
		// signed addressing is based at 0x9000
		offset = 0x1000 + int(int8(tileIndex))*16
	}
	offset += row * 2
	return g.vram[offset], g.vram[offset+1]
}

// rawPixel extracts the 2-bit color index at bitIndex (7 = leftmost).
func rawPixel(low, high uint8, bitIndex uint8) uint8 {
	return bit.Value(bitIndex, low) | bit.Value(bitIndex, high)<<1
}

func (g *GPU) drawBackground() {
	mapBase := uint16(0x1800) // 0x9800 relative to VRAM
	if bit.IsSet(lcdcBGTileMap, g.lcdc) {
		mapBase = 0x1C00
	}

	// the background is a 256x256 torus; both axes wrap
	mapY := (g.line + int(g.scy)) & 0xFF
	tileRow := mapY % 8
	mapRowBase := mapBase + uint16(mapY/8)*32

	for x := 0; x < FrameWidth; x++ {
		mapX := (x + int(g.scx)) & 0xFF
		tileIndex := g.vram[mapRowBase+uint16(mapX/8)]
		low, high := g.tileRowPlanes(tileIndex, tileRow)

		raw := rawPixel(low, high, uint8(7-mapX%8))
		g.bgLine[x] = raw
		g.fb.setPixel(x, g.line, paletteShade(g.bgp, raw))
	}
}

func (g *GPU) drawWindow() {
	if g.line < int(g.wy) {
		return
	}
	startX := int(g.wx) - 7
	if startX >= FrameWidth {
		return
	}

	mapBase := uint16(0x1800)
	if bit.IsSet(lcdcWindowTileMap, g.lcdc) {
		mapBase = 0x1C00
	}

	tileRow := g.windowLine % 8
	mapRowBase := mapBase + uint16(g.windowLine/8)*32

	for x := max(startX, 0); x < FrameWidth; x++ {
		windowX := x - startX
		tileIndex := g.vram[mapRowBase+uint16(windowX/8)]
		low, high := g.tileRowPlanes(tileIndex, tileRow)

		raw := rawPixel(low, high, uint8(7-windowX%8))
		g.bgLine[x] = raw
		g.fb.setPixel(x, g.line, paletteShade(g.bgp, raw))
	}

	// the internal line counter only advances on lines the window drew
	g.windowLine++
}

// scanlineSprites collects up to 10 sprites overlapping the current line, in
// OAM order, exactly as the mode-2 scan does: only Y participates in the
// selection, so off-screen-X sprites still use up slots.
func (g *GPU) scanlineSprites(height int) []sprite {
	selected := make([]sprite, 0, maxSpritesPerLine)
	for i := 0; i < 40 && len(selected) < maxSpritesPerLine; i++ {
		entry := decodeSprite(g.oam[i*4:i*4+4], i)
		if entry.y <= g.line && g.line < entry.y+height {
			selected = append(selected, entry)
		}
	}
	return selected
}

func (g *GPU) drawSprites() {
	height := 8
	if bit.IsSet(lcdcSpriteSize, g.lcdc) {
		height = 16
	}

	selected := g.scanlineSprites(height)
	if len(selected) == 0 {
		return
	}

	g.sprites.clear()
	for _, s := range selected {
		for px := 0; px < 8; px++ {
			g.sprites.claim(s.x+px, s.oamIndex, s.x)
		}
	}

	for _, s := range selected {
		row := g.line - s.y
		if s.flipY {
			row = height - 1 - row
		}

		tile := s.tile
		if height == 16 {
			tile &= 0xFE
			if row >= 8 {
				tile |= 0x01
				row -= 8
			}
		}

		// sprites always use unsigned addressing from 0x8000
		offset := int(tile)*16 + row*2
		low, high := g.vram[offset], g.vram[offset+1]

		palette := g.obp0
		if s.useOBP1 {
			palette = g.obp1
		}

		for px := 0; px < 8; px++ {
			x := s.x + px
			if x < 0 || x >= FrameWidth || g.sprites.ownerOf(x) != s.oamIndex {
				continue
			}

			bitIndex := uint8(7 - px)
			if s.flipX {
				bitIndex = uint8(px)
			}
			raw := rawPixel(low, high, bitIndex)
			if raw == 0 {
				// color 0 is transparent for sprites
				continue
			}
			if s.behindBG && g.bgLine[x] != 0 {
				continue
			}

			g.fb.setPixel(x, g.line, paletteShade(palette, raw))
		}
	}
}
