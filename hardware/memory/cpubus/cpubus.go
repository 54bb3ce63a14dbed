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

// Package cpubus defines the interface through which the rest of the
// emulation accesses memory and lists the canonical names of the LCD
// registers.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU (or anything else acting as a bus master, such as the OAM DMA). The
// memory package implements this interface and maps the address to the
// correct memory area. The LCD also implements this interface but only for
// the addresses it owns.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Debugger defines meta-operations for memory. Peek and Poke behave like Read
// and Write but without any side effects. No logging, no DMA, etc.
type Debugger interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}
