// Package backend hosts the frame consumers the CLI shell can drive the
// core with. The core itself has no UI; these are external collaborators
// speaking the Emulator API.
package backend

import "github.com/aferranti/go-brick/brick"

// Backend runs an emulator until it decides to stop (frame budget reached,
// user quit, ...).
type Backend interface {
	Run(emu *brick.Emulator) error
}
