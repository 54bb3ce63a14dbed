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
	"testing"

	"github.com/jetsetilly/gopherdmg/test"
)

// whitebox test of sprite discovery without going through the state machine
func TestDiscoverSprites(t *testing.T) {
	lcd := NewLCD(nil, nil)

	for p := 0; p < len(lcd.oam.data); p += 4 {
		lcd.oam.data[p] = 50
	}

	for _, scanline := range []uint8{49, 58} {
		lcd.scanline = scanline
		lcd.discoverSprites()
		test.ExpectEquality(t, len(lcd.sprites), 0)
	}

	for _, scanline := range []uint8{50, 57} {
		lcd.scanline = scanline
		lcd.discoverSprites()
		test.ExpectEquality(t, len(lcd.sprites), MaxSprites)
		test.ExpectEquality(t, cap(lcd.sprites), MaxSprites)
	}

	lcd.control.tallSprites = true
	lcd.scanline = 65
	lcd.discoverSprites()
	test.ExpectEquality(t, len(lcd.sprites), MaxSprites)
	lcd.scanline = 66
	lcd.discoverSprites()
	test.ExpectEquality(t, len(lcd.sprites), 0)
}

func TestGateIsFunctionOfState(t *testing.T) {
	lcd := NewLCD(nil, nil)
	for _, s := range []ScreenState{HBlank, VBlank, OAMSearch, DataTransfer} {
		lcd.setScreenState(s)
		a := [3]bool{lcd.tileData.enabled, lcd.tileMaps.enabled, lcd.oam.enabled}

		// pass through another state and back again
		lcd.setScreenState((s + 1) % 4)
		lcd.setScreenState(s)
		b := [3]bool{lcd.tileData.enabled, lcd.tileMaps.enabled, lcd.oam.enabled}
		test.ExpectEquality(t, a, b)
	}
}

func TestDMAWithoutMemory(t *testing.T) {
	lcd := NewLCD(nil, nil)
	err := lcd.Write(0xff46, 0xc0)
	test.ExpectFailure(t, err)
}
