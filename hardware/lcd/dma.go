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
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// transfer copies 160 bytes from memory, starting at (data * 256), into OAM.
// OAM is only changed if every byte can be read.
//
// the copy is immediate. on the real hardware the transfer takes 160
// machine cycles during which the CPU can only access high RAM.
func (lcd *LCD) transfer(data uint8) error {
	if lcd.mem == nil {
		return curated.Errorf(DMAError, "no memory attached")
	}

	var buf [memorymap.MemtopOAM - memorymap.OriginOAM + 1]uint8

	src := uint16(data) << 8
	for i := range buf {
		v, err := lcd.mem.Read(src + uint16(i))
		if err != nil {
			return curated.Errorf(DMAError, err)
		}
		buf[i] = v
	}

	copy(lcd.oam.data, buf[:])

	return nil
}
