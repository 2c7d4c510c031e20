package audio

import "github.com/aferranti/go-brick/brick/snapshot"

// channel holds the state of one APU voice. The four voices share the
// struct; each generator only touches the fields that exist on its hardware.
type channel struct {
	enabled bool
	dacOn   bool

	left, right bool // NR51 routing

	// square
	duty     uint8
	dutyStep uint8

	// square + wave: 11-bit frequency value, period = 2048 - freq
	freq      uint16
	freqTimer int

	length       uint16
	lengthEnable bool

	// envelope (square 1/2, noise)
	envInit  uint8 // initial volume from NRx2
	envUp    bool
	envPace  uint8
	envTimer uint8
	envDone  bool
	volume   uint8 // current volume, 0-15

	// sweep (square 1 only)
	sweepPace    uint8
	sweepDown    bool
	sweepShift   uint8
	sweepEnable  bool
	sweepTimer   uint8
	shadowFreq   uint16
	sweepNegUsed bool

	// wave
	waveIndex uint8
	waveLevel uint8 // NR32 output code (0 mute, 1 full, 2 half, 3 quarter)

	// noise
	lfsr       uint16
	width7     bool
	shift      uint8
	divisor    uint8
	noiseTimer int
}

var dutyPatterns = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0}, // 12.5%
	{0, 1, 1, 0, 0, 0, 0, 0}, // 25%
	{0, 1, 1, 1, 1, 0, 0, 0}, // 50%
	{1, 0, 0, 1, 1, 1, 1, 1}, // 75%
}

var noiseDivisors = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

func (ch *channel) squarePeriod() int {
	return (2048 - int(ch.freq&0x7FF)) * 4
}

func (ch *channel) wavePeriod() int {
	return (2048 - int(ch.freq&0x7FF)) * 2
}

func (ch *channel) noisePeriod() int {
	return noiseDivisors[ch.divisor&0x07] << ch.shift
}

// stepSquare advances the duty position and returns the output level for
// this slice of cycles. The output swings ±volume for a DC-free signal.
func (ch *channel) stepSquare(cycles int) int64 {
	period := ch.squarePeriod()
	if period <= 0 {
		return 0
	}
	if ch.freqTimer <= 0 {
		ch.freqTimer = period
	}
	ch.freqTimer -= cycles
	for ch.freqTimer <= 0 {
		ch.freqTimer += period
		ch.dutyStep = (ch.dutyStep + 1) & 0x07
	}

	if ch.volume == 0 {
		return 0
	}
	if dutyPatterns[ch.duty&0x03][ch.dutyStep] == 0 {
		return -int64(ch.volume)
	}
	return int64(ch.volume)
}

// stepWave advances the 32-entry sample position and returns the shifted
// sample, centered around zero.
func (ch *channel) stepWave(cycles int, waveRAM []uint8) int64 {
	period := ch.wavePeriod()
	if period <= 0 {
		return 0
	}
	if ch.freqTimer <= 0 {
		ch.freqTimer = period
	}
	ch.freqTimer -= cycles
	for ch.freqTimer <= 0 {
		ch.freqTimer += period
		ch.waveIndex = (ch.waveIndex + 1) & 0x1F
	}

	raw := waveRAM[ch.waveIndex>>1]
	if ch.waveIndex&1 == 0 {
		raw >>= 4
	}
	sample := int64(raw&0x0F) - 8

	switch ch.waveLevel & 0x03 {
	case 0:
		return 0
	case 1:
		return sample
	case 2:
		return sample >> 1
	default:
		return sample >> 2
	}
}

// stepNoise clocks the LFSR. The feedback bit is the XOR of bits 0 and 1,
// shifted in at bit 14 (and bit 6 too in 7-bit mode); the audible output is
// the inverse of bit 0.
func (ch *channel) stepNoise(cycles int) int64 {
	period := ch.noisePeriod()
	if period <= 0 {
		return 0
	}
	if ch.lfsr == 0 {
		ch.lfsr = 0x7FFF
	}
	if ch.noiseTimer <= 0 {
		ch.noiseTimer = period
	}
	ch.noiseTimer -= cycles
	for ch.noiseTimer <= 0 {
		ch.noiseTimer += period
		feedback := (ch.lfsr ^ ch.lfsr>>1) & 1
		ch.lfsr = ch.lfsr>>1 | feedback<<14
		if ch.width7 {
			ch.lfsr = ch.lfsr&^(1<<6) | feedback<<6
		}
	}

	if ch.volume == 0 {
		return 0
	}
	if ch.lfsr&1 != 0 {
		return -int64(ch.volume)
	}
	return int64(ch.volume)
}

// tickEnvelope runs one 64 Hz envelope step. The timer keeps running while
// the channel is silent, but stops once the volume has clamped.
func (ch *channel) tickEnvelope() {
	if !ch.dacOn || ch.envDone {
		return
	}

	pace := ch.envPace
	if pace == 0 {
		pace = 8
	}
	if ch.envTimer == 0 {
		ch.envTimer = pace
	}
	ch.envTimer--
	if ch.envTimer > 0 {
		return
	}
	ch.envTimer = pace

	if ch.envUp {
		if ch.volume < 15 {
			ch.volume++
		} else {
			ch.envDone = true
		}
	} else {
		if ch.volume > 0 {
			ch.volume--
		} else {
			ch.envDone = true
		}
	}
}

// sweepTarget computes freq ± (freq >> shift) from the shadow frequency and
// reports 11-bit overflow. It never mutates channel state.
func (ch *channel) sweepTarget() (uint16, bool) {
	delta := ch.shadowFreq >> ch.sweepShift
	if ch.sweepDown {
		if delta > ch.shadowFreq {
			return 0, false
		}
		return ch.shadowFreq - delta, false
	}
	target := ch.shadowFreq + delta
	return target, target > 2047
}

func (ch *channel) snapshot(w *snapshot.Writer) {
	w.Bool(ch.enabled)
	w.U8(ch.dutyStep)
	w.U32(uint32(ch.freqTimer))
	w.U16(ch.length)
	w.U8(ch.envTimer)
	w.Bool(ch.envDone)
	w.U8(ch.volume)
	w.Bool(ch.sweepEnable)
	w.U8(ch.sweepTimer)
	w.U16(ch.shadowFreq)
	w.Bool(ch.sweepNegUsed)
	w.U8(ch.waveIndex)
	w.U16(ch.lfsr)
	w.U32(uint32(ch.noiseTimer))
}

func (ch *channel) restore(r *snapshot.Reader) {
	ch.enabled = r.Bool()
	ch.dutyStep = r.U8()
	ch.freqTimer = int(int32(r.U32()))
	ch.length = r.U16()
	ch.envTimer = r.U8()
	ch.envDone = r.Bool()
	ch.volume = r.U8()
	ch.sweepEnable = r.Bool()
	ch.sweepTimer = r.U8()
	ch.shadowFreq = r.U16()
	ch.sweepNegUsed = r.Bool()
	ch.waveIndex = r.U8()
	ch.lfsr = r.U16()
	ch.noiseTimer = int(int32(r.U32()))
}
