// Package timing holds the clock constants shared by the core components.
package timing

const (
	// CPUFrequency is the DMG master clock in T-cycles per second.
	CPUFrequency = 4194304

	// CyclesPerFrame is the length of one full LCD frame:
	// 154 scanlines of 456 T-cycles each.
	CyclesPerFrame = 70224

	// CyclesPerScanline is the length of one scanline in T-cycles.
	CyclesPerScanline = 456

	// FramesPerSecond is the resulting refresh rate, approximately 59.7 Hz.
	FramesPerSecond = float64(CPUFrequency) / float64(CyclesPerFrame)

	// HostSampleRate is the audio output rate the APU resamples to.
	HostSampleRate = 44100
)
