package cpu

import "github.com/aferranti/go-brick/brick/snapshot"

// Snapshot serializes the full register file and execution latches.
func (c *CPU) Snapshot(w *snapshot.Writer) {
	for _, reg := range []uint8{c.a, c.f, c.b, c.c, c.d, c.e, c.h, c.l} {
		w.U8(reg)
	}
	w.U16(c.sp)
	w.U16(c.pc)
	w.Bool(c.ime)
	w.Bool(c.eiPending)
	w.Bool(c.halted)
	w.Bool(c.stopped)
	w.U64(c.cycles)
	w.U8(c.currentOpcode)
}

// Restore loads state previously written by Snapshot.
func (c *CPU) Restore(r *snapshot.Reader) {
	regs := []*uint8{&c.a, &c.f, &c.b, &c.c, &c.d, &c.e, &c.h, &c.l}
	for _, reg := range regs {
		*reg = r.U8()
	}
	c.sp = r.U16()
	c.pc = r.U16()
	c.ime = r.Bool()
	c.eiPending = r.Bool()
	c.halted = r.Bool()
	c.stopped = r.Bool()
	c.cycles = r.U64()
	c.currentOpcode = r.U8()
}
