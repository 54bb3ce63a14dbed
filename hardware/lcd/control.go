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

// offsets into the tile data and tile maps selected by the LCDC register.
const (
	secondTileMap    = uint16(0x400)
	unsignedTileData = uint16(0x000)
	signedTileData   = uint16(0x800)
)

// control is the decoded LCDC register.
//
//	bit 7  LCD power
//	bit 6  window tile map (0: $9800, 1: $9c00)
//	bit 5  window enabled
//	bit 4  tile data (0: $8800 signed, 1: $8000 unsigned)
//	bit 3  background tile map (0: $9800, 1: $9c00)
//	bit 2  sprite size (0: 8x8, 1: 8x16)
//	bit 1  sprites enabled
//	bit 0  background enabled
//
// the memory selections are stored as offsets into the tile data and tile
// maps because that is how they are used.
type control struct {
	lcdEnabled     bool
	windowTileMap  uint16
	windowEnabled  bool
	tileData       uint16
	bgTileMap      uint16
	tallSprites    bool
	spritesEnabled bool
	bgEnabled      bool
}

func (c *control) write(data uint8) {
	c.lcdEnabled = data&0x80 == 0x80
	c.windowTileMap = uint16(data&0x40) * 0x10
	c.windowEnabled = data&0x20 == 0x20
	c.tileData = signedTileData - uint16(data&0x10)*0x80
	c.bgTileMap = uint16(data&0x08) * 0x80
	c.tallSprites = data&0x04 == 0x04
	c.spritesEnabled = data&0x02 == 0x02
	c.bgEnabled = data&0x01 == 0x01
}

// read reconstructs the register from the decoded values. note that both the
// sprites enabled and the background enabled flags are reported in bit 1.
// bit 0 always reads as zero.
func (c *control) read() uint8 {
	var v uint8
	if c.lcdEnabled {
		v |= 0x80
	}
	if c.windowTileMap == secondTileMap {
		v |= 0x40
	}
	if c.windowEnabled {
		v |= 0x20
	}
	if c.tileData == unsignedTileData {
		v |= 0x10
	}
	if c.bgTileMap == secondTileMap {
		v |= 0x08
	}
	if c.tallSprites {
		v |= 0x04
	}
	if c.spritesEnabled || c.bgEnabled {
		v |= 0x02
	}
	return v
}

func (c *control) spriteHeight() int {
	if c.tallSprites {
		return 16
	}
	return 8
}
