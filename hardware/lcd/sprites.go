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

import "fmt"

// Sprite is a copy of an OAM record for a sprite found on the current
// scanline. It is discarded at the start of the next scanline.
//
//	byte 0  Y position
//	byte 1  X position
//	byte 2  tile number
//	byte 3  flags
//	        bit 7  priority (1: in front of the window)
//	        bit 6  Y flip
//	        bit 5  X flip
//	        bit 4  palette (1: OBP0, 0: OBP1)
type Sprite struct {
	// position of the record in OAM (0 to 39)
	Index int

	Y    uint8
	X    uint8
	Tile uint8

	FlipVertical   bool
	FlipHorizontal bool
	FrontPriority  bool
	Palette        Palette
}

func newSprite(index int, record []uint8) Sprite {
	s := Sprite{
		Index:          index,
		Y:              record[0],
		X:              record[1],
		Tile:           record[2],
		FrontPriority:  record[3]&0x80 == 0x80,
		FlipVertical:   record[3]&0x40 == 0x40,
		FlipHorizontal: record[3]&0x20 == 0x20,
		Palette:        PaletteOBP1,
	}
	if record[3]&0x10 == 0x10 {
		s.Palette = PaletteOBP0
	}
	return s
}

func (s Sprite) String() string {
	return fmt.Sprintf("#%02d x=%3d y=%3d tile=%02x %s", s.Index, s.X, s.Y, s.Tile, s.Palette)
}

// discoverSprites rebuilds the list of sprites on the current scanline. OAM
// is searched in address order and the search stops when MaxSprites have
// been found.
func (lcd *LCD) discoverSprites() {
	lcd.sprites = lcd.sprites[:0]

	height := lcd.control.spriteHeight()
	scanline := int(lcd.scanline)

	for p := 0; p+4 <= len(lcd.oam.data) && len(lcd.sprites) < MaxSprites; p += 4 {
		y := int(lcd.oam.data[p])
		if y <= scanline && scanline < y+height {
			lcd.sprites = append(lcd.sprites, newSprite(p/4, lcd.oam.data[p:p+4]))
		}
	}
}

// Sprites returns the sprites found on the current scanline. The returned
// slice is only valid until the next OAM search.
func (lcd *LCD) Sprites() []Sprite {
	return lcd.sprites
}
