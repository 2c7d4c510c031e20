package memory

import (
	"github.com/aferranti/go-brick/brick/bit"
	"github.com/aferranti/go-brick/brick/interrupt"
	"github.com/aferranti/go-brick/brick/snapshot"
)

// Key is one of the eight inputs of the joypad matrix.
type Key uint8

const (
	KeyRight Key = iota
	KeyLeft
	KeyUp
	KeyDown
	KeyA
	KeyB
	KeySelect
	KeyStart
)

// Joypad implements the P1 matrix. The register is a selector: with bit 4
// low the directional pad drives bits 0-3, with bit 5 low the action buttons
// do. Pressed reads as 0. Any selected line going high-to-low requests the
// Joypad interrupt.
type Joypad struct {
	irq *interrupt.Controller

	selectBits uint8 // bits 4-5 of P1, as last written
	buttons    uint8 // A/B/Select/Start on bits 0-3, 1 = released
	dpad       uint8 // Right/Left/Up/Down on bits 0-3, 1 = released
}

func NewJoypad(irq *interrupt.Controller) *Joypad {
	return &Joypad{
		irq:        irq,
		selectBits: 0x30,
		buttons:    0x0F,
		dpad:       0x0F,
	}
}

func (j *Joypad) Reset() {
	j.selectBits = 0x30
	j.buttons = 0x0F
	j.dpad = 0x0F
}

// Read composes P1: bits 6-7 always high, selection bits as written, and the
// selected button group (ANDed when both are selected) on the low nibble.
func (j *Joypad) Read() uint8 {
	result := 0xC0 | j.selectBits

	selectDpad := !bit.IsSet(4, j.selectBits)
	selectButtons := !bit.IsSet(5, j.selectBits)

	switch {
	case selectDpad && selectButtons:
		result |= j.dpad & j.buttons & 0x0F
	case selectDpad:
		result |= j.dpad & 0x0F
	case selectButtons:
		result |= j.buttons & 0x0F
	default:
		result |= 0x0F
	}

	return result
}

// Write stores the selection bits; the low nibble is read-only.
func (j *Joypad) Write(value uint8) {
	j.selectBits = value & 0x30
}

// Set updates one key's pressed state and raises the Joypad interrupt on a
// released-to-pressed transition of a currently selected line.
func (j *Joypad) Set(key Key, pressed bool) {
	group := &j.dpad
	line := uint8(key)
	if key >= KeyA {
		group = &j.buttons
		line = uint8(key - KeyA)
	}

	was := *group
	if pressed {
		*group = bit.Reset(line, *group)
	} else {
		*group = bit.Set(line, *group)
	}

	if !pressed {
		return
	}

	selected := (group == &j.dpad && !bit.IsSet(4, j.selectBits)) ||
		(group == &j.buttons && !bit.IsSet(5, j.selectBits))
	if selected && bit.IsSet(line, was) {
		j.irq.Request(interrupt.Joypad)
	}
}

func (j *Joypad) Snapshot(w *snapshot.Writer) {
	w.U8(j.selectBits)
	w.U8(j.buttons)
	w.U8(j.dpad)
}

func (j *Joypad) Restore(r *snapshot.Reader) {
	j.selectBits = r.U8()
	j.buttons = r.U8()
	j.dpad = r.U8()
}
