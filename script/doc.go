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

// Package script drives the emulation from a Lua script. The script has
// access to the memory of the DMG, can advance the emulation and can save
// screenshots. It is useful for test scenes and for exploring the behaviour
// of the LCD without a CPU.
//
// The following functions are available to the script:
//
//	read(address)             read memory through the CPU bus
//	write(address, value)     write memory through the CPU bus
//	peek(address)             read memory without side effects
//	poke(address, value)      write memory without side effects
//	tick([n])                 advance n clocks (default 1). returns the
//	                          number of frames completed
//	nextline([n])             advance to the start of the nth next scanline
//	frame([n])                advance n frames (default 1)
//	scanline()                the current scanline
//	cycle()                   the clock within the current scanline
//	state()                   name of the current screen state
//	sprites()                 table of the sprites on the current scanline
//	interrupts()              table of interrupt counts and pending flags.
//	                          the pending flags are cleared
//	screenshot(path[, scale]) save the framebuffer as a PNG file
//	log(message)              add an entry to the central log
//	print(...)                write to the script output
//
// A script that defines a global function called on_frame can be used to
// set up a scene for one of the interactive modes. The function is called
// after every frame with the frame number as its argument.
//
// Addresses and values are plain Lua numbers.
package script
