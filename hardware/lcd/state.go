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

package lcd

// Geometry and timing of the LCD.
const (
	ScreenWidth       = 160
	ScreenHeight      = 144
	CyclesPerScanline = 456
	ScanlinesPerFrame = 154
	CyclesPerFrame    = CyclesPerScanline * ScanlinesPerFrame

	// the first scanline of the vertical blank
	VBlankScanline = ScreenHeight

	// the clock (in the scanline) at which each state of a visible scanline
	// begins
	OAMSearchCycle    = 0
	DataTransferCycle = 80
	HBlankCycle       = 252

	// the maximum number of sprites on a single scanline
	MaxSprites = 10
)

// ScreenState is the state of the LCD. The numeric value of each state is
// the code reported in bits 0 and 1 of the STAT register.
type ScreenState int

// List of valid ScreenState values.
const (
	HBlank ScreenState = iota
	VBlank
	OAMSearch
	DataTransfer
)

func (s ScreenState) String() string {
	switch s {
	case HBlank:
		return "HBLANK"
	case VBlank:
		return "VBLANK"
	case OAMSearch:
		return "OAM_SEARCH"
	case DataTransfer:
		return "DATA_TRANSFER"
	}
	return "unknown state"
}

// Code returns the two-bit STAT code for the state.
func (s ScreenState) Code() uint8 {
	return uint8(s) & 0x03
}
