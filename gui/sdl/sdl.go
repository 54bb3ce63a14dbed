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

package sdl

import (
	"runtime"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/performance/limiter"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern for all errors returned by the package.
const SDLError = "sdl: %v"

func init() {
	// the SDL package calls LockOSThread() but we call it here too to make
	// it clear that the GUI must be serviced from the main thread
	runtime.LockOSThread()
}

// GUI is an lcd.FrameRenderer that draws to an SDL window.
type GUI struct {
	scr *screen

	// regulates how often the screen is updated. nil if the GUI is not
	// limiting the frame rate
	fpsLimiter *limiter.FPS

	// called when the screenshot key is pressed
	OnScreenshot func()

	state govern.State
}

// NewGUI is the preferred method of initialisation for the GUI type. The
// frame rate is limited to fps frames per second. A value of zero or less
// means the frame rate is not limited.
func NewGUI(scale int, fps float64) (*GUI, error) {
	var err error

	gui := &GUI{
		state: govern.Running,
	}

	if fps > 0 {
		gui.fpsLimiter, err = limiter.NewFPS(fps)
		if err != nil {
			return nil, err
		}
	}

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	gui.scr, err = newScreen(int32(scale))
	if err != nil {
		gui.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	return gui, nil
}

// Destroy frees all SDL resources.
func (gui *GUI) Destroy() {
	if gui.fpsLimiter != nil {
		gui.fpsLimiter.Stop()
	}
	if gui.scr != nil {
		gui.scr.destroy()
	}
	sdl.Quit()
}

// NewFrame implements the lcd.FrameRenderer interface.
func (gui *GUI) NewFrame(fb *lcd.Framebuffer) error {
	if gui.fpsLimiter != nil {
		gui.fpsLimiter.Wait()
	}
	if err := gui.scr.update(fb); err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

func (gui *GUI) setScaling(scale int32) {
	if err := gui.scr.setScaling(scale); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}
