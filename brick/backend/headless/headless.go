// Package headless runs the core for a fixed number of frames with no
// display, for batch runs and ROM test harnesses.
package headless

import (
	"log/slog"

	"github.com/aferranti/go-brick/brick"
)

// Backend drives the emulator frame by frame and stops after MaxFrames.
type Backend struct {
	MaxFrames int

	// Progress, when non-zero, logs every Progress frames.
	Progress int

	frames int
	cycles int
}

func New(maxFrames int) *Backend {
	return &Backend{MaxFrames: maxFrames}
}

func (h *Backend) Run(emu *brick.Emulator) error {
	for h.frames = 0; h.frames < h.MaxFrames; h.frames++ {
		h.cycles += emu.RunUntilVBlank()
		// audio is produced regardless; drain it so the buffer stays flat
		emu.PullAudio(1024)

		if h.Progress > 0 && (h.frames+1)%h.Progress == 0 {
			slog.Info("Headless progress",
				"frame", h.frames+1,
				"cycles", h.cycles,
				"pc", emu.CPU().PC())
		}
	}

	slog.Info("Headless run complete", "frames", h.frames, "cycles", h.cycles)
	return nil
}
