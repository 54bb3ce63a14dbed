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
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/veandco/go-sdl2/sdl"
)

// the largest window scale the keyboard can select
const maxScale = 8

// Service handles any pending window events and returns the state the
// emulation should be in. When paused the function waits for a short time
// for an event.
func (gui *GUI) Service() govern.State {
	var ev sdl.Event
	if gui.state == govern.Paused {
		ev = sdl.WaitEventTimeout(50)
	} else {
		ev = sdl.PollEvent()
	}

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			gui.state = govern.Ending

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
				gui.handleKey(ev.Keysym.Sym)
			}

		case *sdl.WindowEvent:
			// the texture is redrawn in case the window has been uncovered
			// while the emulation is paused
			if ev.Event == sdl.WINDOWEVENT_EXPOSED {
				_ = gui.scr.present()
			}
		}
	}

	return gui.state
}

func (gui *GUI) handleKey(key sdl.Keycode) {
	switch key {
	case sdl.K_ESCAPE, sdl.K_q:
		gui.state = govern.Ending
	case sdl.K_SPACE:
		if gui.state == govern.Paused {
			gui.state = govern.Running
		} else {
			gui.state = govern.Paused
		}
	case sdl.K_s:
		if gui.OnScreenshot != nil {
			gui.OnScreenshot()
		}
	case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS:
		if gui.scr.pixelScale < maxScale {
			gui.setScaling(gui.scr.pixelScale + 1)
		}
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		gui.setScaling(gui.scr.pixelScale - 1)
	}
}
