// Package brick is the core emulation engine of a DMG Game Boy: a
// cycle-driven system built from a LR35902 interpreter, an MMU with
// cartridge bank controllers, the PPU, the APU, the timer, the interrupt
// controller, the joypad and the OAM DMA engine, all advanced in lock-step
// by a single driver.
package brick

import (
	"github.com/aferranti/go-brick/brick/audio"
	"github.com/aferranti/go-brick/brick/cpu"
	"github.com/aferranti/go-brick/brick/interrupt"
	"github.com/aferranti/go-brick/brick/memory"
	"github.com/aferranti/go-brick/brick/serial"
	"github.com/aferranti/go-brick/brick/timing"
	"github.com/aferranti/go-brick/brick/video"
)

// Construction and state errors, surfaced from the owning packages.
var (
	ErrInvalidHeader  = memory.ErrInvalidHeader
	ErrUnsupportedMBC = memory.ErrUnsupportedMBC
)

// Button is one of the eight joypad inputs.
type Button = memory.Key

const (
	ButtonRight  = memory.KeyRight
	ButtonLeft   = memory.KeyLeft
	ButtonUp     = memory.KeyUp
	ButtonDown   = memory.KeyDown
	ButtonA      = memory.KeyA
	ButtonB      = memory.KeyB
	ButtonSelect = memory.KeySelect
	ButtonStart  = memory.KeyStart
)

// Emulator owns every component and drives them by the CPU's cycle output.
// All execution is single-threaded and synchronous; a host rendering on
// another thread must copy the framebuffer out after RunUntilVBlank returns.
type Emulator struct {
	irq    *interrupt.Controller
	gpu    *video.GPU
	apu    *audio.APU
	serial *serial.Port
	mmu    *memory.MMU
	cpu    *cpu.CPU
}

// New builds an emulator around the given cartridge image. It fails with
// ErrInvalidHeader or ErrUnsupportedMBC; a valid image comes up in the
// post-BIOS state, ready to run from 0x0100.
func New(rom []byte) (*Emulator, error) {
	cart, err := memory.NewCartridge(rom)
	if err != nil {
		return nil, err
	}

	irq := &interrupt.Controller{}
	irq.Reset()
	gpu := video.New(irq)
	apu := audio.New()
	port := serial.NewPort(func() { irq.Request(interrupt.Serial) })
	mmu := memory.New(cart, irq, gpu, apu, port)

	return &Emulator{
		irq:    irq,
		gpu:    gpu,
		apu:    apu,
		serial: port,
		mmu:    mmu,
		cpu:    cpu.New(mmu, irq),
	}, nil
}

// Reset reinitializes every component to the post-BIOS state. The cartridge
// ROM and its battery RAM survive.
func (e *Emulator) Reset() {
	e.irq.Reset()
	e.gpu.Reset()
	e.apu.Reset()
	e.mmu.Reset()
	e.cpu.Reset()
}

// StepInstruction runs one CPU instruction and advances the peripherals by
// its cycle count, in the fixed order timer/DMA/serial/RTC, then PPU, then
// APU. Returns the T-cycles consumed.
func (e *Emulator) StepInstruction() int {
	cycles := e.cpu.Step()
	e.mmu.Tick(cycles)
	e.gpu.Tick(cycles)
	e.apu.Tick(cycles)
	return cycles
}

// RunUntilVBlank advances the machine until the PPU enters VBlank and
// returns the cycles consumed. With the LCD disabled there is no VBlank;
// the call then returns after one frame's worth of cycles.
func (e *Emulator) RunUntilVBlank() int {
	total := 0
	for {
		total += e.StepInstruction()
		if e.gpu.ConsumeFrame() {
			return total
		}
		if !e.gpu.Enabled() && total >= timing.CyclesPerFrame {
			return total
		}
	}
}

// SetButton presses or releases a joypad button.
func (e *Emulator) SetButton(b Button, pressed bool) {
	e.mmu.Joypad().Set(b, pressed)
}

// Framebuffer returns the current frame as 160*144 palette-applied 2-bit
// shade indices (one byte per pixel, 0 = lightest). The buffer is owned by
// the PPU and complete after RunUntilVBlank.
func (e *Emulator) Framebuffer() []uint8 {
	return e.gpu.FrameBuffer().Shades()
}

// FramebufferRGBA returns the current frame as 160*144*4 RGBA bytes.
func (e *Emulator) FramebufferRGBA() []uint8 {
	return e.gpu.FrameBuffer().RGBA()
}

// PullAudio returns n stereo sample pairs as interleaved float32 in
// [-1, 1], zero-padded when the APU has produced less. The host should
// drain at its own sample rate (44100 Hz).
func (e *Emulator) PullAudio(n int) []float32 {
	raw := e.apu.PullSamples(n)
	out := make([]float32, len(raw))
	for i, s := range raw {
		out[i] = float32(s) / 32768.0
	}
	return out
}

// BatteryRAM returns a copy of the battery-backed save RAM, or nil when the
// cartridge has none.
func (e *Emulator) BatteryRAM() []byte {
	return e.mmu.Cartridge().BatteryRAM()
}

// LoadBatteryRAM restores save RAM saved from a previous session. Data for
// a cartridge without a battery is silently dropped.
func (e *Emulator) LoadBatteryRAM(data []byte) error {
	e.mmu.Cartridge().LoadBatteryRAM(data)
	return nil
}

// Component accessors for debugger front-ends and tests.

func (e *Emulator) CPU() *cpu.CPU    { return e.cpu }
func (e *Emulator) MMU() *memory.MMU { return e.mmu }
func (e *Emulator) GPU() *video.GPU  { return e.gpu }
func (e *Emulator) APU() *audio.APU  { return e.apu }
