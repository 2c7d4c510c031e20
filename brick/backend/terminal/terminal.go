// Package terminal renders the emulator into a tcell screen, two pixels per
// character cell using the upper-half-block glyph, and maps the keyboard to
// the joypad.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/aferranti/go-brick/brick"
	"github.com/aferranti/go-brick/brick/timing"
	"github.com/aferranti/go-brick/brick/video"
)

var frameTime = time.Duration(float64(time.Second) / timing.FramesPerSecond)

// shadeColors maps the four DMG shades to terminal colors.
var shadeColors = [4]tcell.Color{
	tcell.ColorWhite,
	tcell.ColorSilver,
	tcell.ColorGray,
	tcell.ColorBlack,
}

// keyBindings maps tcell keys to joypad buttons. Z/X are A/B, Enter is
// Start, Backspace is Select, arrows are the pad.
var runeBindings = map[rune]brick.Button{
	'z': brick.ButtonA,
	'x': brick.ButtonB,
}

var keyBindings = map[tcell.Key]brick.Button{
	tcell.KeyUp:        brick.ButtonUp,
	tcell.KeyDown:      brick.ButtonDown,
	tcell.KeyLeft:      brick.ButtonLeft,
	tcell.KeyRight:     brick.ButtonRight,
	tcell.KeyEnter:     brick.ButtonStart,
	tcell.KeyBackspace: brick.ButtonSelect,
}

// keyHold is how long a key press stays asserted: terminals report key
// repeats, not releases, so buttons are released on a timeout.
const keyHold = 150 * time.Millisecond

// Backend is the interactive terminal front-end.
type Backend struct {
	screen  tcell.Screen
	pressed map[brick.Button]time.Time
}

func New() *Backend {
	return &Backend{pressed: make(map[brick.Button]time.Time)}
}

func (t *Backend) Run(emu *brick.Emulator) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.screen = screen
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					close(quit)
					return nil
				}
				t.handleKey(emu, ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			t.releaseStale(emu)
			emu.RunUntilVBlank()
			emu.PullAudio(1024) // no sound device; keep the buffer drained
			t.draw(emu.Framebuffer())
		}
	}
}

func (t *Backend) handleKey(emu *brick.Emulator, ev *tcell.EventKey) {
	button, ok := keyBindings[ev.Key()]
	if !ok {
		if ev.Key() != tcell.KeyRune {
			return
		}
		button, ok = runeBindings[ev.Rune()]
		if !ok {
			return
		}
	}
	emu.SetButton(button, true)
	t.pressed[button] = time.Now()
}

func (t *Backend) releaseStale(emu *brick.Emulator) {
	now := time.Now()
	for button, since := range t.pressed {
		if now.Sub(since) > keyHold {
			emu.SetButton(button, false)
			delete(t.pressed, button)
		}
	}
}

// draw paints the 160x144 frame into 160x72 character cells, stacking two
// pixels per cell with the upper-half-block glyph.
func (t *Backend) draw(shades []uint8) {
	for y := 0; y < video.FrameHeight; y += 2 {
		for x := 0; x < video.FrameWidth; x++ {
			top := shadeColors[shades[y*video.FrameWidth+x]&0x03]
			bottom := shadeColors[shades[(y+1)*video.FrameWidth+x]&0x03]
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
	t.screen.Show()
}
