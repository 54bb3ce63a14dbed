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
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
)

// DMG is the root of the emulation.
type DMG struct {
	Mem *memory.Memory
	IRQ *interrupts.Flags
	LCD *lcd.LCD

	// number of clocks since the last reset
	clock uint64

	// number of frames completed since the last reset. a frame is completed
	// on entry to the vertical blank
	frame int
}

// NewDMG creates a new DMG and everything associated with the hardware.
func NewDMG() *DMG {
	dmg := &DMG{
		IRQ: &interrupts.Flags{},
	}
	dmg.Mem = memory.NewMemory(dmg.IRQ)
	dmg.LCD = lcd.NewLCD(dmg.Mem, dmg.IRQ)
	dmg.Mem.AttachLCD(dmg.LCD)
	return dmg
}

func (dmg *DMG) String() string {
	return fmt.Sprintf("frame=%d clock=%d %s", dmg.frame, dmg.clock, dmg.LCD)
}

// Reset the LCD and the interrupt register. The contents of RAM and video
// memory are left as they are.
func (dmg *DMG) Reset() {
	dmg.LCD.Reset()
	dmg.IRQ.Reset()
	dmg.clock = 0
	dmg.frame = 0
}

// Clock returns the number of clocks since the last reset.
func (dmg *DMG) Clock() uint64 {
	return dmg.clock
}

// Frame returns the number of frames completed since the last reset.
func (dmg *DMG) Frame() int {
	return dmg.frame
}
