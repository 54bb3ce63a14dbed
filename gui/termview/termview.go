// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package termview

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/gui/termview/easyterm"
	"github.com/jetsetilly/gopherdmg/gui/termview/easyterm/ansi"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/performance/limiter"
)

// TermView is an lcd.FrameRenderer that draws to a terminal.
type TermView struct {
	easyterm.Terminal

	// draw every nth frame. values of less than one are treated as one
	FrameSkip int

	// called when the screenshot key is pressed
	OnScreenshot func()

	// nil if the frame rate is not being limited
	fpsLimiter *limiter.FPS

	// keys from the input goroutine
	keys chan byte

	state    govern.State
	frameNum int
	started  time.Time
}

// NewTermView is the preferred method of initialisation for the TermView
// type. The terminal is put into cbreak mode and should be returned to normal
// with CleanUp().
func NewTermView(input *os.File, output *os.File) (*TermView, error) {
	tv := &TermView{
		FrameSkip: 1,
		keys:      make(chan byte, 16),
		state:     govern.Running,
		started:   time.Now(),
	}

	if err := tv.Initialise(input, output); err != nil {
		return nil, err
	}
	tv.CBreakMode()
	tv.Print("%s%s", ansi.ClearScreen, ansi.CursorHide)

	// the goroutine ends when the input file is closed. reads on a terminal
	// cannot be interrupted so we leave it running
	go func() {
		b := make([]byte, 1)
		for {
			if _, err := tv.Read(b); err != nil {
				if err != io.EOF {
					logger.Log(logger.Allow, "termview", err)
				}
				return
			}
			tv.keys <- b[0]
		}
	}()

	return tv, nil
}

// SetFPS limits the number of frames per second. A value of zero or less
// removes the limit.
func (tv *TermView) SetFPS(fps float64) error {
	if tv.fpsLimiter != nil {
		tv.fpsLimiter.Stop()
		tv.fpsLimiter = nil
	}
	if fps <= 0 {
		return nil
	}

	var err error
	tv.fpsLimiter, err = limiter.NewFPS(fps)
	return err
}

// CleanUp returns the terminal to normal.
func (tv *TermView) CleanUp() {
	if tv.fpsLimiter != nil {
		tv.fpsLimiter.Stop()
	}
	tv.Print("%s%s\n", ansi.NormalPen, ansi.CursorShow)
	tv.Terminal.CleanUp()
}

// NewFrame implements the lcd.FrameRenderer interface.
func (tv *TermView) NewFrame(fb *lcd.Framebuffer) error {
	tv.frameNum++

	if tv.fpsLimiter != nil {
		tv.fpsLimiter.Wait()
	}

	skip := tv.FrameSkip
	if skip < 1 {
		skip = 1
	}
	if tv.frameNum%skip != 0 {
		return nil
	}

	g := tv.Geometry()
	if err := paint(tv, fb, reduction(g.Cols, g.Rows)); err != nil {
		return err
	}
	tv.status()

	return nil
}

func (tv *TermView) status() {
	fps := float64(tv.frameNum) / time.Since(tv.started).Seconds()
	tv.Print("%sframe %d  %.1f fps  %s", ansi.ClearLine, tv.frameNum, fps, tv.state)
}

// handleKey changes the state of the emulation in response to a key press.
func (tv *TermView) handleKey(k byte) {
	switch k {
	case 'q', 'Q', easyterm.KeyEsc, easyterm.KeyInterrupt:
		tv.state = govern.Ending
	case ' ':
		if tv.state == govern.Paused {
			tv.state = govern.Running
		} else {
			tv.state = govern.Paused
		}
	case 's', 'S':
		if tv.OnScreenshot != nil {
			tv.OnScreenshot()
		}
	}
}

// Service handles any keys that have been pressed and returns the state the
// emulation should be in. It never blocks unless the emulation is paused, in
// which case it waits for a short time for a key.
func (tv *TermView) Service() govern.State {
drain:
	for {
		select {
		case k := <-tv.keys:
			tv.handleKey(k)
		default:
			break drain
		}
	}

	if tv.state == govern.Paused {
		select {
		case k := <-tv.keys:
			tv.handleKey(k)
		case <-time.After(50 * time.Millisecond):
		}
		tv.status()
	}

	return tv.state
}

func (tv *TermView) String() string {
	return fmt.Sprintf("termview: frame %d (%s)", tv.frameNum, tv.state)
}
