package memory

import (
	"github.com/aferranti/go-brick/brick/addr"
	"github.com/aferranti/go-brick/brick/bit"
	"github.com/aferranti/go-brick/brick/interrupt"
	"github.com/aferranti/go-brick/brick/snapshot"
)

// divSeed is the internal divider value at the post-BIOS handover
// (DIV reads 0xAB).
const divSeed = 0xABCC

// Timer implements DIV/TIMA/TMA/TAC. TIMA increments on the falling edge of
// the TAC-selected bit of a free-running 16-bit counter whose upper byte is
// DIV. On overflow TIMA reads 0 for four cycles, then TMA is loaded and the
// Timer interrupt is requested; a TIMA write inside that window cancels the
// reload, a TMA write inside it changes the value reloaded.
type Timer struct {
	irq *interrupt.Controller

	counter uint16 // internal divider, DIV is the upper 8 bits
	lastTap bool   // previous level of the selected bit, for edge detection
	reload  int    // cycles left in the overflow window, 0 when idle

	tima uint8
	tma  uint8
	tac  uint8
}

func NewTimer(irq *interrupt.Controller) *Timer {
	return &Timer{irq: irq, counter: divSeed}
}

func (t *Timer) Reset() {
	t.counter = divSeed
	t.lastTap = false
	t.reload = 0
	t.tima = 0
	t.tma = 0
	t.tac = 0
}

// tapBit returns the divider bit selected by TAC bits 0-1.
func (t *Timer) tapBit() uint8 {
	switch t.tac & 0x03 {
	case 0x00:
		return 9 // 4096 Hz
	case 0x01:
		return 3 // 262144 Hz
	case 0x02:
		return 5 // 65536 Hz
	default:
		return 7 // 16384 Hz
	}
}

// Tick advances the timer one T-cycle at a time so falling edges are never
// skipped over.
func (t *Timer) Tick(cycles int) {
	for range cycles {
		t.counter++

		if t.reload > 0 {
			t.reload--
			if t.reload == 0 {
				t.tima = t.tma
				t.irq.Request(interrupt.Timer)
			}
			continue
		}

		if t.tac&0x04 == 0 {
			t.lastTap = false
			continue
		}

		tap := bit.IsSet16(t.tapBit(), t.counter)
		if t.lastTap && !tap {
			t.tima++
			if t.tima == 0 {
				t.reload = 4
			}
		}
		t.lastTap = tap
	}
}

func (t *Timer) Read(address uint16) uint8 {
	switch address {
	case addr.DIV:
		return uint8(t.counter >> 8)
	case addr.TIMA:
		return t.tima
	case addr.TMA:
		return t.tma
	case addr.TAC:
		return t.tac | 0xF8
	}
	return 0xFF
}

func (t *Timer) Write(address uint16, value uint8) {
	switch address {
	case addr.DIV:
		// any write clears the whole internal counter; the selected tap
		// may fall with it, producing one extra TIMA tick
		t.counter = 0
	case addr.TIMA:
		t.tima = value
		// a write during the overflow window cancels the TMA reload
		t.reload = 0
	case addr.TMA:
		t.tma = value
	case addr.TAC:
		t.tac = value & 0x07
	}
}

func (t *Timer) Snapshot(w *snapshot.Writer) {
	w.U16(t.counter)
	w.Bool(t.lastTap)
	w.U8(uint8(t.reload))
	w.U8(t.tima)
	w.U8(t.tma)
	w.U8(t.tac)
}

func (t *Timer) Restore(r *snapshot.Reader) {
	t.counter = r.U16()
	t.lastTap = r.Bool()
	t.reload = int(r.U8())
	t.tima = r.U8()
	t.tma = r.U8()
	t.tac = r.U8()
}
