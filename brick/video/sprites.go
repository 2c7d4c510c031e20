package video

import "github.com/aferranti/go-brick/brick/bit"

// sprite is one OAM entry, decoded with the hardware position offsets
// already removed.
type sprite struct {
	y        int // top scanline of the sprite
	x        int // leftmost pixel column (may be negative)
	tile     uint8
	oamIndex int

	useOBP1  bool
	flipX    bool
	flipY    bool
	behindBG bool
}

func decodeSprite(raw []uint8, index int) sprite {
	flags := raw[3]
	return sprite{
		y:        int(raw[0]) - 16,
		x:        int(raw[1]) - 8,
		tile:     raw[2],
		oamIndex: index,
		useOBP1:  bit.IsSet(4, flags),
		flipX:    bit.IsSet(5, flags),
		flipY:    bit.IsSet(6, flags),
		behindBG: bit.IsSet(7, flags),
	}
}

// spritePriority resolves sprite-to-sprite priority per pixel without
// sorting: every sprite tries to claim the pixels it covers, and a claim
// wins when the pixel is unowned, the claimant has a lower X, or the X
// matches and the claimant has a lower OAM index.
type spritePriority struct {
	owner  [FrameWidth]int // OAM index owning each pixel, -1 when free
	ownerX [FrameWidth]int
}

func (p *spritePriority) clear() {
	for i := range p.owner {
		p.owner[i] = -1
		p.ownerX[i] = 0x100
	}
}

func (p *spritePriority) claim(pixelX, oamIndex, spriteX int) {
	if pixelX < 0 || pixelX >= FrameWidth {
		return
	}
	switch current := p.owner[pixelX]; {
	case current == -1,
		spriteX < p.ownerX[pixelX],
		spriteX == p.ownerX[pixelX] && oamIndex < current:
		p.owner[pixelX] = oamIndex
		p.ownerX[pixelX] = spriteX
	}
}

func (p *spritePriority) ownerOf(pixelX int) int {
	if pixelX < 0 || pixelX >= FrameWidth {
		return -1
	}
	return p.owner[pixelX]
}
