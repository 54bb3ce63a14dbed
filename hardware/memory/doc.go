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

// Package memory implements the DMG memory model as far as it is needed to
// support the LCD.
//
// Memory is viewed differently by different parts of the emulation. The CPU
// bus (see the cpubus package) is the normal route into memory and is used by
// anything acting as the bus master, including the OAM DMA transfer. The
// debugger bus is the route used by the debugging tools and by the script
// package. The differences between the two are mainly about side effects:
// a Peek() or Poke() never logs, never triggers a DMA transfer and is never
// blocked by the LCD.
//
//	    CPU / DMA ---- cpu bus ---- *---- RAM
//	                                |
//	                                |---- LCD (tile data, tile maps, OAM,
//	                                |          registers)
//	                                |
//	                                 ---- IF
//
//	                             |
//	                        debugger bus
//	                             |
//
//	                          DEBUGGER
//
// The asterisk indicates that the address is first mapped to an area with
// the memorymap package. Areas that are not of interest to the LCD are
// treated as plain RAM. In particular there is no cartridge, no boot ROM and
// no echo RAM.
package memory
