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

// Package ansi defines the ANSI control sequences used to draw the screen in
// a terminal.
package ansi

import (
	"fmt"
	"strings"
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// ClearScreen is the CSI sequence to clear the terminal.
const ClearScreen = "\033[2J"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorHome is the CSI sequence to move the cursor to the top-left corner.
const CursorHome = "\033[H"

// CursorHide and CursorShow are the CSI sequences to change the visibility of
// the cursor.
const (
	CursorHide = "\033[?25l"
	CursorShow = "\033[?25h"
)

// CursorPosition is the CSI sequence that moves the cursor to the row and
// column. Both values count from one.
func CursorPosition(row int, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// ansi target for 24-bit colours.
const (
	targetPen   = 38
	targetPaper = 48
)

func writeRGB(s *strings.Builder, target int, rgb uint32) {
	fmt.Fprintf(s, "%d;2;%d;%d;%d", target, uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// TrueColor is the CSI sequence that sets the pen and the paper to 24-bit
// colours. The colours are in 0xRRGGBB format.
func TrueColor(pen uint32, paper uint32) string {
	s := strings.Builder{}
	s.Grow(40)
	s.WriteString("\033[")
	writeRGB(&s, targetPen, pen)
	s.WriteString(";")
	writeRGB(&s, targetPaper, paper)
	s.WriteString("m")
	return s.String()
}

// TruePen is like TrueColor but sets the pen only.
func TruePen(pen uint32) string {
	s := strings.Builder{}
	s.WriteString("\033[")
	writeRGB(&s, targetPen, pen)
	s.WriteString("m")
	return s.String()
}
