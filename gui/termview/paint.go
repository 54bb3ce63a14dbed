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
	"io"
	"strings"

	"github.com/jetsetilly/gopherdmg/gui/termview/easyterm/ansi"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
)

const upperHalfBlock = "▀"

// reduction returns the smallest step through the framebuffer that allows
// the image to fit in the geometry. one character row shows two pixel rows.
// the bottom row of the terminal is kept for the status line.
func reduction(cols int, rows int) int {
	step := 1
	for step < lcd.ScreenWidth {
		w := (lcd.ScreenWidth + step - 1) / step
		h := (lcd.ScreenHeight/step + 1) / 2
		if w <= cols && h <= rows-1 {
			break
		}
		step++
	}
	return step
}

// paint writes the framebuffer to w, sampling every step pixels in both
// directions. colour sequences are only emitted when the colour changes.
func paint(w io.Writer, fb *lcd.Framebuffer, step int) error {
	s := strings.Builder{}
	s.WriteString(ansi.CursorHome)

	for y := 0; y < lcd.ScreenHeight; y += step * 2 {
		var pen, paper uint32
		first := true

		for x := 0; x < lcd.ScreenWidth; x += step {
			upper := fb[y][x]
			lower := upper
			if y+step < lcd.ScreenHeight {
				lower = fb[y+step][x]
			}

			if first || upper != pen || lower != paper {
				s.WriteString(ansi.TrueColor(upper, lower))
				pen, paper = upper, lower
				first = false
			}
			s.WriteString(upperHalfBlock)
		}

		s.WriteString(ansi.NormalPen)
		s.WriteString("\n")
	}

	_, err := io.WriteString(w, s.String())
	return err
}
