// Package audio implements the APU: the 512 Hz frame sequencer driving
// length, envelope and sweep, the four channel generators, and the stereo
// mixer that resamples to the host rate.
package audio

import (
	"github.com/aferranti/go-brick/brick/snapshot"
	"github.com/aferranti/go-brick/brick/timing"
)

const (
	// seqPeriod is the cycle count between frame sequencer steps (512 Hz).
	seqPeriod = 8192

	waveRAMSize = 16

	maxLength     = 64
	maxWaveLength = 256
)

// channel indices
const (
	square1 = iota
	square2
	wave
	noise
)

// APU generates 4-channel DMG audio. All state is cycle-driven; PullSamples
// drains the resampled PCM the generators have produced so far.
type APU struct {
	enabled bool
	ch      [4]channel

	vinLeft, vinRight bool
	volLeft, volRight uint8 // 0-7, from NR50

	seqStep   int
	seqCycles int

	// raw register storage; reads apply the open-bit masks
	nr10, nr11, nr12, nr13, nr14 uint8
	nr21, nr22, nr23, nr24       uint8
	nr30, nr31, nr32, nr33, nr34 uint8
	nr41, nr42, nr43, nr44       uint8
	nr50, nr51                   uint8
	waveRAM                      [waveRAMSize]uint8

	// mixing: per-cycle levels are averaged over each host sample period
	mixLeft, mixRight int64
	mixCycles         int
	sampleAcc         float64
	cyclesPerSample   float64
	pcm               []int16
}

func New() *APU {
	a := &APU{
		cyclesPerSample: float64(timing.CPUFrequency) / float64(timing.HostSampleRate),
	}
	a.Reset()
	return a
}

// Reset restores the post-BIOS register values.
func (a *APU) Reset() {
	*a = APU{cyclesPerSample: a.cyclesPerSample}
	a.WriteRegister(0xFF26, 0x80) // NR52: power on
	a.WriteRegister(0xFF10, 0x80)
	a.WriteRegister(0xFF11, 0xBF)
	a.WriteRegister(0xFF12, 0xF3)
	a.WriteRegister(0xFF14, 0xBF)
	a.WriteRegister(0xFF16, 0x3F)
	a.WriteRegister(0xFF19, 0xBF)
	a.WriteRegister(0xFF1A, 0x7F)
	a.WriteRegister(0xFF1B, 0xFF)
	a.WriteRegister(0xFF1C, 0x9F)
	a.WriteRegister(0xFF1E, 0xBF)
	a.WriteRegister(0xFF20, 0xFF)
	a.WriteRegister(0xFF23, 0xBF)
	a.WriteRegister(0xFF24, 0x77)
	a.WriteRegister(0xFF25, 0xF3)
	// the boot ROM leaves every channel off even though CH1 was triggered
	for i := range a.ch {
		a.ch[i].enabled = false
	}
}

// Tick advances the APU by CPU T-cycles.
func (a *APU) Tick(cycles int) {
	if !a.enabled {
		// the sequencer stops with the APU; time simply passes
		a.flushSilence(cycles)
		return
	}

	a.stepGenerators(cycles)

	a.seqCycles += cycles
	for a.seqCycles >= seqPeriod {
		a.seqCycles -= seqPeriod
		a.stepSequencer()
	}
}

// stepSequencer advances one frame-sequencer step:
//
//	step | length | envelope | sweep
//	   0 | tick   |          |
//	   2 | tick   |          | tick
//	   4 | tick   |          |
//	   6 | tick   |          | tick
//	   7 |        | tick     |
func (a *APU) stepSequencer() {
	switch a.seqStep {
	case 0, 4:
		a.tickLengths()
	case 2, 6:
		a.tickLengths()
		a.tickSweep()
	case 7:
		a.tickEnvelopes()
	}
	a.seqStep = (a.seqStep + 1) & 7
}

func (a *APU) tickLengths() {
	for i := range a.ch {
		ch := &a.ch[i]
		if ch.lengthEnable && ch.length > 0 {
			ch.length--
			if ch.length == 0 {
				ch.enabled = false
			}
		}
	}
}

func (a *APU) tickEnvelopes() {
	for _, i := range []int{square1, square2, noise} {
		a.ch[i].tickEnvelope()
	}
}

func (a *APU) tickSweep() {
	ch := &a.ch[square1]
	if !ch.sweepEnable {
		return
	}

	ch.sweepTimer--
	if ch.sweepTimer > 0 {
		return
	}
	ch.sweepTimer = ch.sweepPace
	if ch.sweepTimer == 0 {
		ch.sweepTimer = 8
	}
	if ch.sweepPace == 0 {
		// pace 0 reloads the timer but performs no calculation
		return
	}

	newFreq, overflow := ch.sweepTarget()
	if overflow {
		ch.enabled = false
		return
	}
	if ch.sweepDown {
		ch.sweepNegUsed = true
	}
	if ch.sweepShift == 0 {
		return
	}

	ch.shadowFreq = newFreq
	ch.freq = newFreq
	a.nr13 = uint8(newFreq)
	a.nr14 = a.nr14&0xF8 | uint8(newFreq>>8)&0x07

	// the hardware runs the overflow check a second time with the new value
	if _, overflow := ch.sweepTarget(); overflow {
		ch.enabled = false
	}
}

// stepGenerators advances the four tone generators and accumulates their
// output into the mixer lanes.
func (a *APU) stepGenerators(cycles int) {
	if cycles <= 0 {
		return
	}

	var left, right int64
	for i := range a.ch {
		ch := &a.ch[i]
		if !ch.enabled || !ch.dacOn {
			continue
		}

		var level int64
		switch i {
		case square1, square2:
			level = ch.stepSquare(cycles)
		case wave:
			level = ch.stepWave(cycles, a.waveRAM[:])
		case noise:
			level = ch.stepNoise(cycles)
		}

		if ch.left {
			left += level
		}
		if ch.right {
			right += level
		}
	}

	a.mixLeft += left * int64(cycles)
	a.mixRight += right * int64(cycles)
	a.mixCycles += cycles
	a.flushSamples(cycles)
}

const pcmScale = 32767.0 / (15.0 * 4.0)

func scalePCM(avg float64, masterVol uint8) int16 {
	value := avg * float64(masterVol+1) / 8.0 * pcmScale
	switch {
	case value > 32767:
		return 32767
	case value < -32768:
		return -32768
	}
	return int16(value)
}

func (a *APU) flushSamples(cycles int) {
	a.sampleAcc += float64(cycles)
	for a.sampleAcc >= a.cyclesPerSample {
		a.sampleAcc -= a.cyclesPerSample

		var left, right int16
		if a.mixCycles > 0 {
			left = scalePCM(float64(a.mixLeft)/float64(a.mixCycles), a.volLeft)
			right = scalePCM(float64(a.mixRight)/float64(a.mixCycles), a.volRight)
		}
		a.mixLeft, a.mixRight, a.mixCycles = 0, 0, 0
		a.pcm = append(a.pcm, left, right)
	}
}

// flushSilence keeps the sample clock running while the APU is powered off
// so the host keeps receiving (zero) samples at the right rate.
func (a *APU) flushSilence(cycles int) {
	a.sampleAcc += float64(cycles)
	for a.sampleAcc >= a.cyclesPerSample {
		a.sampleAcc -= a.cyclesPerSample
		a.pcm = append(a.pcm, 0, 0)
	}
}

// PullSamples returns exactly count interleaved stereo sample pairs and
// removes the buffered ones it used. Missing samples are zero-filled so the
// host can always play a full block.
func (a *APU) PullSamples(count int) []int16 {
	if count <= 0 {
		return nil
	}
	needed := count * 2
	out := make([]int16, needed)
	n := copy(out, a.pcm)
	a.pcm = a.pcm[:copy(a.pcm, a.pcm[n:])]
	return out
}

// BufferedSamples reports how many stereo pairs are waiting.
func (a *APU) BufferedSamples() int {
	return len(a.pcm) / 2
}

// ChannelsActive reports the per-channel enabled flags (NR52 bits 0-3).
func (a *APU) ChannelsActive() (ch1, ch2, ch3, ch4 bool) {
	return a.ch[0].enabled, a.ch[1].enabled, a.ch[2].enabled, a.ch[3].enabled
}

// Snapshot serializes registers, wave RAM and all generator state. The PCM
// buffer is host-facing and intentionally excluded.
func (a *APU) Snapshot(w *snapshot.Writer) {
	regs := []uint8{
		a.nr10, a.nr11, a.nr12, a.nr13, a.nr14,
		a.nr21, a.nr22, a.nr23, a.nr24,
		a.nr30, a.nr31, a.nr32, a.nr33, a.nr34,
		a.nr41, a.nr42, a.nr43, a.nr44,
		a.nr50, a.nr51,
	}
	for _, reg := range regs {
		w.U8(reg)
	}
	w.Bytes(a.waveRAM[:])
	w.Bool(a.enabled)
	w.U8(uint8(a.seqStep))
	w.U16(uint16(a.seqCycles))
	for i := range a.ch {
		a.ch[i].snapshot(w)
	}
}

func (a *APU) Restore(r *snapshot.Reader) {
	regs := []*uint8{
		&a.nr10, &a.nr11, &a.nr12, &a.nr13, &a.nr14,
		&a.nr21, &a.nr22, &a.nr23, &a.nr24,
		&a.nr30, &a.nr31, &a.nr32, &a.nr33, &a.nr34,
		&a.nr41, &a.nr42, &a.nr43, &a.nr44,
		&a.nr50, &a.nr51,
	}
	for _, reg := range regs {
		*reg = r.U8()
	}
	r.ReadBytes(a.waveRAM[:])
	a.enabled = r.Bool()
	a.seqStep = int(r.U8())
	a.seqCycles = int(r.U16())
	a.deriveConfig()
	for i := range a.ch {
		a.ch[i].restore(r)
	}
	a.mixLeft, a.mixRight, a.mixCycles = 0, 0, 0
	a.sampleAcc = 0
	a.pcm = a.pcm[:0]
}
