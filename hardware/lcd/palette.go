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

// Shades are the four colours of the display, from lightest to darkest, as
// 24-bit RGB values.
var Shades = [4]uint32{
	0xffffff,
	0xc0c0c0,
	0x606060,
	0x000000,
}

// Palette selects the palette register used to map a two-bit colour index
// to a shade.
type Palette int

// List of valid Palette values. PaletteNone maps the colour index directly
// to the shade with the same number.
const (
	PaletteNone Palette = iota
	PaletteBG
	PaletteOBP0
	PaletteOBP1
	numPalettes
)

func (p Palette) String() string {
	switch p {
	case PaletteNone:
		return "none"
	case PaletteBG:
		return "BGP"
	case PaletteOBP0:
		return "OBP0"
	case PaletteOBP1:
		return "OBP1"
	}
	return "unknown palette"
}

// reset values of the palette registers. the value for PaletteNone never
// changes and maps each index to itself.
var paletteResetValues = [numPalettes]uint8{
	PaletteNone: 0xe4,
	PaletteBG:   0xfc,
	PaletteOBP0: 0xff,
	PaletteOBP1: 0xff,
}

// PaletteValue returns the current value of the palette register. Unlike
// reading the register through Read() this does not log anything.
func (lcd *LCD) PaletteValue(p Palette) uint8 {
	if p < 0 || p >= numPalettes {
		return 0
	}
	return lcd.palettes[p]
}

// Shade returns the RGB value of the colour index, mapped through the
// palette.
func (lcd *LCD) Shade(p Palette, index uint8) uint32 {
	return Shades[(lcd.PaletteValue(p)>>((index&0x03)*2))&0x03]
}
