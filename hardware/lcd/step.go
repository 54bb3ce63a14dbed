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
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Tick moves the LCD forward one clock.
func (lcd *LCD) Tick() {
	lcd.cycle = (lcd.cycle + 1) % CyclesPerScanline

	if lcd.cycle == 0 {
		lcd.scanline = uint8((int(lcd.scanline) + 1) % ScanlinesPerFrame)

		if lcd.scanline == VBlankScanline {
			lcd.setScreenState(VBlank)
		}

		if lcd.status.scanlineCheck && lcd.scanline == lcd.cmpScanline {
			lcd.raise(interrupts.LCDStat)
		}
	}

	if lcd.scanline >= VBlankScanline {
		return
	}

	switch lcd.cycle {
	case OAMSearchCycle:
		lcd.setScreenState(OAMSearch)
		lcd.discoverSprites()
	case DataTransferCycle:
		lcd.setScreenState(DataTransfer)
		lcd.renderLine()
	case HBlankCycle:
		lcd.setScreenState(HBlank)
	}
}

func (lcd *LCD) raise(k interrupts.Kind) {
	if lcd.irq != nil {
		lcd.irq.RaiseInterrupt(k)
	}
}

// gate sets the enabled flag of each region according to the current state.
// OAM is used by the LCD during the OAM search and the tile data and maps
// during the data transfer.
func (lcd *LCD) gate() {
	vram := lcd.state != DataTransfer
	lcd.oam.enabled = lcd.state != OAMSearch
	lcd.tileData.enabled = vram
	lcd.tileMaps.enabled = vram
}

func (lcd *LCD) setScreenState(state ScreenState) {
	lcd.state = state
	lcd.gate()

	switch state {
	case VBlank:
		lcd.raise(interrupts.VBlank)
		if lcd.status.vblankCheck {
			lcd.raise(interrupts.LCDStat)
		}
		for _, r := range lcd.renderers {
			if err := r.NewFrame(&lcd.fb); err != nil {
				logger.Log(logger.Allow, "lcd", err)
			}
		}
	case HBlank:
		if lcd.status.hblankCheck {
			lcd.raise(interrupts.LCDStat)
		}
	case OAMSearch:
		if lcd.status.oamCheck {
			lcd.raise(interrupts.LCDStat)
		}
	}
}
