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

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// LCD is the picture generation unit of the DMG.
type LCD struct {
	// source of the data for OAM DMA transfers
	mem cpubus.Memory

	// destination of VBLANK and LCD STAT interrupts
	irq interrupts.Raiser

	Prefs Preferences

	state ScreenState

	// clock within the scanline. 0 to CyclesPerScanline-1
	cycle int

	// current scanline (LY) and the scanline compare value (LYC)
	scanline    uint8
	cmpScanline uint8

	scrollX uint8
	scrollY uint8
	windowX uint8
	windowY uint8

	// palette registers indexed by Palette
	palettes [numPalettes]uint8

	// the last value written to the DMA register
	dma uint8

	control control
	status  status

	tileData region
	tileMaps region
	oam      region

	sprites []Sprite
	line    Line
	fb      Framebuffer

	compositor Compositor
	renderers  []FrameRenderer
}

// NewLCD is the preferred method of initialisation for the LCD type. The
// memory argument is used as the source for DMA transfers. The LCD is reset
// before being returned.
func NewLCD(mem cpubus.Memory, irq interrupts.Raiser) *LCD {
	lcd := &LCD{
		mem:      mem,
		irq:      irq,
		tileData: newRegion(TileData, 0x1800, memorymap.OriginTileData, memorymap.MaskTileData),
		tileMaps: newRegion(TileMaps, 0x800, memorymap.OriginTileMaps, memorymap.MaskTileMaps),
		oam:      newRegion(OAM, 0xa0, memorymap.OriginOAM, memorymap.MaskOAM),
		sprites:  make([]Sprite, 0, MaxSprites),
	}
	lcd.line.lcd = lcd
	lcd.Reset()
	return lcd
}

// Reset puts the LCD into the state left by the boot ROM. The contents of
// video memory and the framebuffer are not changed.
func (lcd *LCD) Reset() {
	lcd.control = control{
		lcdEnabled: true,
		tileData:   unsignedTileData,
		bgEnabled:  true,
	}
	lcd.status = status{}

	lcd.scanline = 0
	lcd.cmpScanline = 0
	lcd.scrollX = 0
	lcd.scrollY = 0
	lcd.windowX = 0
	lcd.windowY = 0
	lcd.palettes = paletteResetValues
	lcd.dma = 0

	lcd.sprites = lcd.sprites[:0]

	// start rendering from the top left of the frame. changing the state
	// directly rather than through setScreenState() because a reset must not
	// raise an interrupt
	lcd.cycle = 0
	lcd.state = OAMSearch
	lcd.gate()
}

func (lcd *LCD) String() string {
	return fmt.Sprintf("LY=%03d LYC=%03d cycle=%03d %s LCDC=%02x STAT=%02x SCX=%02x SCY=%02x WX=%02x WY=%02x sprites=%d",
		lcd.scanline, lcd.cmpScanline, lcd.cycle, lcd.state,
		lcd.control.read(), lcd.readStatus(),
		lcd.scrollX, lcd.scrollY, lcd.windowX, lcd.windowY, len(lcd.sprites))
}

// State returns the current screen state.
func (lcd *LCD) State() ScreenState {
	return lcd.state
}

// Scanline returns the current scanline.
func (lcd *LCD) Scanline() int {
	return int(lcd.scanline)
}

// Cycle returns the clock within the current scanline.
func (lcd *LCD) Cycle() int {
	return lcd.cycle
}

// Framebuffer returns the LCD's framebuffer. The contents will change as
// the LCD is ticked.
func (lcd *LCD) Framebuffer() *Framebuffer {
	return &lcd.fb
}

// RegionEnabled returns false if the region is currently being used by the
// LCD.
func (lcd *LCD) RegionEnabled(r Region) bool {
	switch r {
	case TileData:
		return lcd.tileData.enabled
	case TileMaps:
		return lcd.tileMaps.enabled
	case OAM:
		return lcd.oam.enabled
	}
	return false
}
