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

// Package interrupts defines the interrupt sources raised by the LCD and the
// IF register that latches them until the CPU services them.
//
// Only the interrupt kinds that the LCD raises are defined. The CPU is not
// part of this emulation and so nothing here enables, prioritises or
// dispatches interrupts.
package interrupts

// Kind of interrupt.
type Kind int

// List of valid Kind values. The numeric value is the bit position in the IF
// register.
const (
	VBlank Kind = iota
	LCDStat
)

func (k Kind) String() string {
	switch k {
	case VBlank:
		return "VBLANK"
	case LCDStat:
		return "LCD STAT"
	}
	return "unknown interrupt"
}

// Raiser is implemented by anything that can accept an interrupt request.
type Raiser interface {
	RaiseInterrupt(Kind)
}
