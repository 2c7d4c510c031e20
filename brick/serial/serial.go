// Package serial implements a register-level stub of the link port. There is
// no peer: a transfer started with the internal clock completes after the
// time eight bits would take, raises the Serial interrupt, and shifts in
// 0xFF. Outgoing bytes are logged, which is how the classic test ROMs report
// their results.
package serial

import (
	"log/slog"

	"github.com/aferranti/go-brick/brick/addr"
	"github.com/aferranti/go-brick/brick/bit"
	"github.com/aferranti/go-brick/brick/snapshot"
)

// transferCycles is the duration of one byte at the DMG bit clock:
// 8192 Hz gives 512 T-cycles per bit, 4096 for the full byte.
const transferCycles = 4096

// Port is the stub serial device.
type Port struct {
	irq func()

	sb, sc    uint8
	active    bool
	countdown int

	line []byte
}

// NewPort creates the stub. The callback is invoked when a transfer
// completes and should request the Serial interrupt.
func NewPort(irq func()) *Port {
	p := &Port{irq: irq}
	p.Reset()
	return p
}

func (p *Port) Reset() {
	p.sb = 0x00
	p.sc = 0x7E
	p.active = false
	p.countdown = 0
	p.line = p.line[:0]
}

func (p *Port) Read(address uint16) uint8 {
	switch address {
	case addr.SB:
		return p.sb
	case addr.SC:
		return p.sc | 0x7E
	}
	return 0xFF
}

func (p *Port) Write(address uint16, value uint8) {
	switch address {
	case addr.SB:
		p.sb = value
	case addr.SC:
		p.sc = value
		// start on bit 7 with the internal clock selected; with an
		// external clock and no peer, nothing ever arrives
		if bit.IsSet(7, value) && bit.IsSet(0, value) {
			p.active = true
			p.countdown = transferCycles
		}
	}
}

func (p *Port) Tick(cycles int) {
	if !p.active {
		return
	}
	p.countdown -= cycles
	if p.countdown > 0 {
		return
	}
	p.complete()
}

func (p *Port) complete() {
	p.active = false
	p.countdown = 0
	p.logByte(p.sb)
	p.sb = 0xFF // nothing on the wire
	p.sc = bit.Reset(7, p.sc)
	if p.irq != nil {
		p.irq()
	}
}

// logByte buffers outgoing bytes into lines so test-ROM output stays
// readable in the logs.
func (p *Port) logByte(value uint8) {
	if value == '\n' {
		slog.Info("Serial output", "line", string(p.line))
		p.line = p.line[:0]
		return
	}
	if value >= 0x20 && value < 0x7F {
		p.line = append(p.line, value)
	}
	if len(p.line) >= 256 {
		slog.Info("Serial output", "line", string(p.line))
		p.line = p.line[:0]
	}
}

func (p *Port) Snapshot(w *snapshot.Writer) {
	w.U8(p.sb)
	w.U8(p.sc)
	w.Bool(p.active)
	w.U16(uint16(p.countdown))
}

func (p *Port) Restore(r *snapshot.Reader) {
	p.sb = r.U8()
	p.sc = r.U8()
	p.active = r.Bool()
	p.countdown = int(r.U16())
	p.line = p.line[:0]
}
