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

// Package lcd emulates the LCD controller of the DMG, the picture generation
// unit that turns tile and sprite memory into a frame of 160x144 pixels.
//
// The LCD is driven by the Tick() function, one call per machine clock. Every
// scanline takes 456 clocks and there are 154 scanlines per frame, the last
// ten of which are the vertical blank. During the visible scanlines the LCD
// moves through three states:
//
//	OAM search     clock 0    sprites for the scanline are discovered
//	data transfer  clock 80   the scanline is rendered to the framebuffer
//	hblank         clock 252  idle until the end of the scanline
//
// The scanline is rendered in one go at the start of the data transfer
// state. Changes made to the registers part way through a scanline will not
// be seen until the next scanline.
//
// The LCD owns the tile data, the tile maps, the OAM and the twelve LCD
// registers. The Read() and Write() functions will only accept an address
// in one of these areas. Any other address results in an InvalidAddress
// error.
//
// The palette registers and the DMA register are write-only. Reading them
// returns 0xff and adds an entry to the log.
//
// Access to the OAM during the OAM search state, and to the tile data/maps
// during the data transfer state, is not blocked by default. See the
// Preferences type for how to change that.
//
// Only the background is drawn. A Compositor can be attached with
// SetCompositor() to draw the window and sprites over the background before
// the scanline's colours are resolved.
package lcd
