package memory

import "github.com/aferranti/go-brick/brick/snapshot"

// dmaDuration is the nominal length of an OAM DMA transfer in T-cycles.
const dmaDuration = 640

// oamDMA models the OAM DMA engine. The 160-byte copy happens atomically at
// the 0xFF46 write; the countdown only shields OAM from CPU reads until the
// transfer would have finished on hardware.
type oamDMA struct {
	source    uint8
	countdown int
}

// Active reports whether a transfer is in flight; the MMU answers 0xFF for
// OAM reads while it is.
func (d *oamDMA) Active() bool {
	return d.countdown > 0
}

func (d *oamDMA) Tick(cycles int) {
	if d.countdown > 0 {
		d.countdown -= cycles
		if d.countdown < 0 {
			d.countdown = 0
		}
	}
}

// start copies 160 bytes from page<<8 into OAM, reading through the MMU the
// way the CPU would. Source pages 0xFE/0xFF therefore produce the usual
// region defaults.
func (d *oamDMA) start(m *MMU, page uint8) {
	d.source = page
	base := uint16(page) << 8
	for i := 0; i < 0xA0; i++ {
		m.gpu.WriteOAMByte(i, m.Read(base+uint16(i)))
	}
	d.countdown = dmaDuration
}

func (d *oamDMA) Snapshot(w *snapshot.Writer) {
	w.U8(d.source)
	w.U16(uint16(d.countdown))
}

func (d *oamDMA) Restore(r *snapshot.Reader) {
	d.source = r.U8()
	d.countdown = int(r.U16())
}
