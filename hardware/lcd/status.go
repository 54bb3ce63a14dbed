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

// status is the writable part of the STAT register. the other bits are
// derived from the LCD state when the register is read.
//
//	bit 7  unused, always reads 1
//	bit 6  scanline compare interrupt enable
//	bit 5  OAM search interrupt enable
//	bit 4  vblank interrupt enable
//	bit 3  hblank interrupt enable
//	bit 2  scanline compare signal (read only)
//	bit 1-0 screen state (read only, 0 when the LCD is off)
type status struct {
	scanlineCheck bool
	oamCheck      bool
	vblankCheck   bool
	hblankCheck   bool
}

func (s *status) write(data uint8) {
	s.scanlineCheck = data&0x40 == 0x40
	s.oamCheck = data&0x20 == 0x20
	s.vblankCheck = data&0x10 == 0x10
	s.hblankCheck = data&0x08 == 0x08
}

func (lcd *LCD) readStatus() uint8 {
	v := uint8(0x80)
	if lcd.status.scanlineCheck {
		v |= 0x40
	}
	if lcd.status.oamCheck {
		v |= 0x20
	}
	if lcd.status.vblankCheck {
		v |= 0x10
	}
	if lcd.status.hblankCheck {
		v |= 0x08
	}
	if lcd.scanline == lcd.cmpScanline {
		v |= 0x04
	}
	if lcd.control.lcdEnabled {
		v |= lcd.state.Code()
	}
	return v
}
