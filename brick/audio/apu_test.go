package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferranti/go-brick/brick/addr"
)

// freshAPU powers the APU on with otherwise cleared registers.
func freshAPU() *APU {
	a := New()
	a.WriteRegister(addr.NR52, 0x00)
	a.WriteRegister(addr.NR52, 0x80)
	return a
}

func TestRegisterReadMasks(t *testing.T) {
	a := freshAPU()

	a.WriteRegister(addr.NR10, 0x12)
	assert.Equal(t, uint8(0x92), a.ReadRegister(addr.NR10), "bit 7 reads high")

	a.WriteRegister(addr.NR11, 0x34)
	assert.Equal(t, uint8(0x3F), a.ReadRegister(addr.NR11)&0x3F, "length bits are write-only")

	assert.Equal(t, uint8(0xFF), a.ReadRegister(addr.NR13))
	assert.Equal(t, uint8(0xFF), a.ReadRegister(addr.NR31))
	assert.Equal(t, uint8(0xFF), a.ReadRegister(addr.NR41))
	assert.Equal(t, uint8(0xFF), a.ReadRegister(0xFF15), "hole between NR14 and NR21")
}

func TestNR52Status(t *testing.T) {
	a := freshAPU()

	status := a.ReadRegister(addr.NR52)
	assert.Equal(t, uint8(0xF0), status, "powered, unused bits high, no channels")

	a.WriteRegister(addr.NR12, 0xF0) // DAC on
	a.WriteRegister(addr.NR14, 0x80) // trigger
	assert.Equal(t, uint8(0xF1), a.ReadRegister(addr.NR52))
}

func TestPowerOffClearsRegisters(t *testing.T) {
	a := freshAPU()

	a.WriteRegister(addr.NR10, 0x55)
	a.WriteRegister(addr.NR50, 0x77)
	a.WriteRegister(addr.NR51, 0xFF)

	a.WriteRegister(addr.NR52, 0x00)

	assert.Equal(t, uint8(0x70), a.ReadRegister(addr.NR52))
	assert.Equal(t, uint8(0x80), a.ReadRegister(addr.NR10), "cleared storage behind the mask")
	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR50))
	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR51))
}

func TestWritesIgnoredWhilePoweredOff(t *testing.T) {
	a := freshAPU()
	a.WriteRegister(addr.NR52, 0x00)

	a.WriteRegister(addr.NR50, 0x77)
	a.WriteRegister(addr.NR12, 0xF3)

	a.WriteRegister(addr.NR52, 0x80)
	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR50))
	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR12))
}

func TestWaveRAMWritableWhilePoweredOff(t *testing.T) {
	a := freshAPU()
	a.WriteRegister(addr.NR52, 0x00)

	a.WriteRegister(addr.WaveRAMStart, 0xAB)
	assert.Equal(t, uint8(0xAB), a.ReadRegister(addr.WaveRAMStart))
}

func TestFrameSequencerRate(t *testing.T) {
	a := freshAPU()

	start := a.seqStep
	a.Tick(seqPeriod - 1)
	assert.Equal(t, start, a.seqStep)
	a.Tick(1)
	assert.Equal(t, (start+1)&7, a.seqStep)

	for i := 0; i < 7; i++ {
		a.Tick(seqPeriod)
	}
	assert.Equal(t, start, a.seqStep, "eight steps wrap")
}

// lengthTicks runs the sequencer until n length clocks have happened.
func lengthTicks(a *APU, n int) {
	for done := 0; done < n; {
		if a.seqStep%2 == 0 {
			done++
		}
		a.Tick(seqPeriod)
	}
}

func TestLengthCounterExactness(t *testing.T) {
	a := freshAPU()

	const L = 4
	a.WriteRegister(addr.NR12, 0xF0)          // DAC on, no envelope
	a.WriteRegister(addr.NR11, uint8(64-L))   // length counter = L
	a.WriteRegister(addr.NR14, 0xC0)          // trigger with length enabled

	ch1, _, _, _ := a.ChannelsActive()
	require.True(t, ch1)

	lengthTicks(a, L-1)
	ch1, _, _, _ = a.ChannelsActive()
	assert.True(t, ch1, "still audible one tick early")

	lengthTicks(a, 1)
	ch1, _, _, _ = a.ChannelsActive()
	assert.False(t, ch1, "exactly L ticks silence the channel")
}

func TestTriggerWithZeroLengthReloadsMax(t *testing.T) {
	a := freshAPU()

	a.WriteRegister(addr.NR12, 0xF0)
	a.WriteRegister(addr.NR11, 64-1)
	a.WriteRegister(addr.NR14, 0xC0)
	lengthTicks(a, 1) // counter hits zero, channel off

	a.WriteRegister(addr.NR14, 0xC0) // retrigger
	ch1, _, _, _ := a.ChannelsActive()
	assert.True(t, ch1)
	// the counter reloads to 64; depending on sequencer phase the enable
	// quirk may clock it once right away
	assert.GreaterOrEqual(t, a.ch[square1].length, uint16(63))
}

func TestTriggerWithDACOffStaysSilent(t *testing.T) {
	a := freshAPU()

	a.WriteRegister(addr.NR12, 0x00) // DAC off
	a.WriteRegister(addr.NR14, 0x80)

	ch1, _, _, _ := a.ChannelsActive()
	assert.False(t, ch1)
}

func TestEnvelopeDecreases(t *testing.T) {
	a := freshAPU()

	a.WriteRegister(addr.NR12, 0xF1) // volume 15, down, pace 1
	a.WriteRegister(addr.NR13, 0x00)
	a.WriteRegister(addr.NR14, 0x87)
	require.Equal(t, uint8(15), a.ch[square1].volume)

	// one full sequencer round reaches step 7 once
	for i := 0; i < 8; i++ {
		a.Tick(seqPeriod)
	}
	assert.Equal(t, uint8(14), a.ch[square1].volume)

	for round := 0; round < 14; round++ {
		for i := 0; i < 8; i++ {
			a.Tick(seqPeriod)
		}
	}
	assert.Equal(t, uint8(0), a.ch[square1].volume)
	ch1, _, _, _ := a.ChannelsActive()
	assert.True(t, ch1, "envelope at zero does not disable the channel")
}

func TestSweepOverflowDisablesChannel(t *testing.T) {
	a := freshAPU()

	a.WriteRegister(addr.NR12, 0xF0)
	a.WriteRegister(addr.NR10, 0x11) // pace 1, add, shift 1
	a.WriteRegister(addr.NR13, 0xFF)
	a.WriteRegister(addr.NR14, 0x87) // freq 0x7FF: first sweep overflows

	ch1, _, _, _ := a.ChannelsActive()
	assert.False(t, ch1, "trigger overflow check already kills it")
}

func TestSweepNegateModeSwitchDisables(t *testing.T) {
	a := freshAPU()

	a.WriteRegister(addr.NR12, 0xF0)
	a.WriteRegister(addr.NR10, 0x19) // pace 1, subtract, shift 1
	a.WriteRegister(addr.NR13, 0x00)
	a.WriteRegister(addr.NR14, 0x84) // freq 0x400

	ch1, _, _, _ := a.ChannelsActive()
	require.True(t, ch1)

	a.WriteRegister(addr.NR10, 0x11) // flip to add mode after a subtract calc
	ch1, _, _, _ = a.ChannelsActive()
	assert.False(t, ch1)
}

func TestNoiseLFSRPeriods(t *testing.T) {
	t.Run("15-bit", func(t *testing.T) {
		assert.Equal(t, 32767, lfsrPeriod(false))
	})
	t.Run("7-bit", func(t *testing.T) {
		assert.Equal(t, 127, lfsrPeriod(true))
	})
}

// lfsrPeriod clocks the noise LFSR until its state repeats. A warm-up run
// first moves the register off the seed and onto its steady cycle.
func lfsrPeriod(width7 bool) int {
	ch := channel{width7: width7, lfsr: 0x7FFF, volume: 1}
	period := ch.noisePeriod()

	for i := 0; i < 200; i++ {
		ch.stepNoise(period)
	}
	ref := ch.lfsr

	for n := 1; n <= 40000; n++ {
		ch.stepNoise(period)
		if ch.lfsr == ref {
			return n
		}
	}
	return -1
}

func TestWaveOutputLevels(t *testing.T) {
	a := freshAPU()

	a.WriteRegister(addr.WaveRAMStart, 0xF0) // first sample = 0xF
	a.WriteRegister(addr.NR30, 0x80)         // DAC on
	a.WriteRegister(addr.NR32, 0x20)         // full volume
	a.WriteRegister(addr.NR33, 0x00)
	a.WriteRegister(addr.NR34, 0x87)

	_, _, ch3, _ := a.ChannelsActive()
	assert.True(t, ch3)
	assert.Equal(t, uint8(1), a.ch[wave].waveLevel)
}

func TestSamplesAreProduced(t *testing.T) {
	a := freshAPU()

	a.WriteRegister(addr.NR52, 0x80)
	a.WriteRegister(addr.NR51, 0x11) // channel 1 both sides
	a.WriteRegister(addr.NR50, 0x77)
	a.WriteRegister(addr.NR12, 0xF0)
	a.WriteRegister(addr.NR11, 0x80)
	a.WriteRegister(addr.NR13, 0x00)
	a.WriteRegister(addr.NR14, 0x87)

	for i := 0; i < 100; i++ {
		a.Tick(95)
	}

	require.Greater(t, a.BufferedSamples(), 0)
	samples := a.PullSamples(50)
	assert.Len(t, samples, 100)

	nonZero := false
	for _, s := range samples {
		if s != 0 {
			nonZero = true
			break
		}
	}
	assert.True(t, nonZero, "an active channel produces signal")
}

func TestPullDrainsBuffer(t *testing.T) {
	a := freshAPU()
	a.Tick(9600) // ~100 samples of silence at 44.1 kHz

	buffered := a.BufferedSamples()
	require.Greater(t, buffered, 0)

	a.PullSamples(buffered)
	assert.Equal(t, 0, a.BufferedSamples())
}
