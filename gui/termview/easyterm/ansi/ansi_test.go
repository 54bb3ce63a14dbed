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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/gui/termview/easyterm/ansi"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestTrueColor(t *testing.T) {
	test.ExpectEquality(t, ansi.TrueColor(0xffffff, 0x000000), "\033[38;2;255;255;255;48;2;0;0;0m")
	test.ExpectEquality(t, ansi.TrueColor(0x606060, 0xc0c0c0), "\033[38;2;96;96;96;48;2;192;192;192m")
	test.ExpectEquality(t, ansi.TruePen(0x102030), "\033[38;2;16;32;48m")
}

func TestCursorPosition(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorPosition(1, 1), "\033[1;1H")
	test.ExpectEquality(t, ansi.CursorPosition(73, 160), "\033[73;160H")
}
