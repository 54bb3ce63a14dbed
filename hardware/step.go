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

package hardware

import (
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
)

// Step the emulation forward one clock. Returns true if the clock completed
// a frame.
func (dmg *DMG) Step() bool {
	dmg.LCD.Tick()
	dmg.clock++

	if dmg.LCD.Cycle() == 0 && dmg.LCD.Scanline() == lcd.VBlankScanline {
		dmg.frame++
		return true
	}

	return false
}

// StepClocks steps the emulation forward by n clocks. Returns the number of
// frames completed.
func (dmg *DMG) StepClocks(n int) int {
	var frames int
	for i := 0; i < n; i++ {
		if dmg.Step() {
			frames++
		}
	}
	return frames
}

// StepScanline steps the emulation to the start of the next scanline.
func (dmg *DMG) StepScanline() {
	dmg.Step()
	for dmg.LCD.Cycle() != 0 {
		dmg.Step()
	}
}

// StepFrame steps the emulation to the start of the next vertical blank.
func (dmg *DMG) StepFrame() {
	for !dmg.Step() {
	}
}
