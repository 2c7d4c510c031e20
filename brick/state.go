package brick

import (
	"github.com/aferranti/go-brick/brick/snapshot"
)

// ErrBadSaveState is returned by LoadState for anything that is not a valid
// state produced by a compatible SaveState.
var ErrBadSaveState = snapshot.ErrBadState

// SaveState serializes every mutable field of the machine into a versioned,
// checksummed byte stream. The cartridge ROM is not included; a state only
// loads back into an emulator built around the same image.
func (e *Emulator) SaveState() []byte {
	w := snapshot.NewWriter()

	e.cpu.Snapshot(w)
	w.U8(e.irq.ReadFlags())
	w.U8(e.irq.ReadEnable())
	e.mmu.Snapshot(w)
	e.gpu.Snapshot(w)
	e.apu.Snapshot(w)
	e.serial.Snapshot(w)

	return w.Finish()
}

// LoadState restores a state produced by SaveState. The header, version and
// checksum are validated before anything is touched, so a bad blob leaves
// the engine unchanged.
func (e *Emulator) LoadState(data []byte) error {
	r, err := snapshot.NewReader(data)
	if err != nil {
		return err
	}

	e.cpu.Restore(r)
	e.irq.WriteFlags(r.U8())
	e.irq.WriteEnable(r.U8())
	e.mmu.Restore(r)
	e.gpu.Restore(r)
	e.apu.Restore(r)
	e.serial.Restore(r)

	return r.Err()
}
