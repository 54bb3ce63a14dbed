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

// Package termview draws the LCD framebuffer in a terminal that supports
// 24-bit colour.
//
// Each character cell shows two pixels, one above the other, by drawing the
// upper-half block character with the pen set to the colour of the upper
// pixel and the paper set to the colour of the lower pixel. The full screen
// needs a terminal of 160 columns and 72 rows. Smaller terminals see a
// reduced image.
//
// The keyboard is read in cbreak mode. Space pauses the emulation, 's' saves
// a screenshot and 'q' or escape ends the emulation.
package termview
