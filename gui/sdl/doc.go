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

// Package sdl displays the LCD framebuffer in a window using the SDL library.
//
// All SDL functions must be called from the same OS thread. The GUI type
// should be created, serviced and destroyed by the goroutine that runs the
// emulation. The easiest way to guarantee this is to drive the emulation from
// the main goroutine, which is locked to the main thread by this package.
//
// The window responds to the following keys:
//
//	space    pause/resume
//	S        save a screenshot
//	+/-      change the window scale
//	escape   end the emulation
package sdl
