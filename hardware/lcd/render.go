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

// Framebuffer is the visible frame as RGB values. Each scanline is
// completely overwritten at the start of the data transfer state.
type Framebuffer [ScreenHeight][ScreenWidth]uint32

// FrameRenderer implementations are told about every completed frame.
type FrameRenderer interface {
	// NewFrame is called on entry to the vertical blank, by which time every
	// visible scanline has been rendered. The framebuffer must not be
	// retained once the function returns.
	NewFrame(fb *Framebuffer) error
}

// Line is a scanline that has been through the background pass but whose
// colours have not yet been resolved.
type Line struct {
	Scanline int

	// colour index and palette selection for each pixel. a compositor
	// can change both
	Index   [ScreenWidth]uint8
	Palette [ScreenWidth]Palette

	// the sprites found for the scanline during the OAM search
	Sprites []Sprite

	SpritesEnabled bool
	TallSprites    bool
	WindowEnabled  bool
	WindowTileMap  uint16
	WindowX        uint8
	WindowY        uint8

	lcd *LCD
}

// TileRow returns the two bitplanes for a row of a tile. The tile number is
// interpreted according to the current LCDC tile data selection. The row
// wraps at 8.
func (ln *Line) TileRow(tile uint8, row int) (uint8, uint8) {
	return ln.lcd.tileRow(ln.lcd.control.tileData, tile, row&0x07)
}

// SpriteRow is like TileRow but always uses the unsigned tile data, as the
// sprites do. The row wraps at 16 so that the second tile of an 8x16 sprite
// can be reached.
func (ln *Line) SpriteRow(tile uint8, row int) (uint8, uint8) {
	return ln.lcd.tileRow(unsignedTileData, tile, row&0x0f)
}

// MapEntry returns the tile number at the column and row of the tile map
// starting at offset.
func (ln *Line) MapEntry(offset uint16, col uint8, row uint8) uint8 {
	return ln.lcd.tileMaps.data[offset+uint16(col&0x1f)+uint16(row&0x1f)*32]
}

// Compositor implementations draw over the background of a scanline.
type Compositor interface {
	Composite(ln *Line)
}

// SetCompositor attaches a compositor. A nil value removes it.
func (lcd *LCD) SetCompositor(c Compositor) {
	lcd.compositor = c
}

// AddRenderer registers a FrameRenderer.
func (lcd *LCD) AddRenderer(r FrameRenderer) {
	lcd.renderers = append(lcd.renderers, r)
}

// tileIndex returns the position of the tile in the tile data, in tiles,
// from the start of the tile data selection. for the signed selection the
// tile number is treated as a signed offset from tile 128.
func tileIndex(tileData uint16, tile uint8) uint16 {
	if tileData == signedTileData {
		return uint16(int(int8(tile)) + 128)
	}
	return uint16(tile)
}

func (lcd *LCD) tileRow(tileData uint16, tile uint8, row int) (uint8, uint8) {
	a := tileData + tileIndex(tileData, tile)*16 + uint16(row)*2
	return lcd.tileData.data[a], lcd.tileData.data[a+1]
}

// PixelIndex combines the two bitplanes of a tile row into the colour index
// for column x (0 is the leftmost pixel). The low plane contributes bit 0 and
// the high plane bit 1.
func PixelIndex(lo uint8, hi uint8, x uint8) uint8 {
	x &= 0x07
	return (lo>>(7-x))&0x01 | uint8((uint16(hi)<<1)>>(7-x))&0x02
}

// renderLine draws the background for the current scanline, runs the
// compositor and resolves the colours into the framebuffer.
func (lcd *LCD) renderLine() {
	ln := &lcd.line
	ln.Scanline = int(lcd.scanline)
	ln.Sprites = lcd.sprites
	ln.SpritesEnabled = lcd.control.spritesEnabled
	ln.TallSprites = lcd.control.tallSprites
	ln.WindowEnabled = lcd.control.windowEnabled
	ln.WindowTileMap = lcd.control.windowTileMap
	ln.WindowX = lcd.windowX
	ln.WindowY = lcd.windowY

	// y is the row of the 256x256 background map, wrapping at the bottom
	y := lcd.scanline + lcd.scrollY

	for px := 0; px < ScreenWidth; px++ {
		if !lcd.control.bgEnabled {
			ln.Index[px] = 0
			ln.Palette[px] = PaletteNone
			continue
		}

		mx := uint8(px) + lcd.scrollX
		tile := ln.MapEntry(lcd.control.bgTileMap, mx/8, y/8)
		lo, hi := ln.TileRow(tile, int(y))
		ln.Index[px] = PixelIndex(lo, hi, mx%8)
		ln.Palette[px] = PaletteBG
	}

	if lcd.compositor != nil {
		lcd.compositor.Composite(ln)
	}

	row := &lcd.fb[ln.Scanline]
	for px := range row {
		row[px] = lcd.Shade(ln.Palette[px], ln.Index[px])
	}
}
