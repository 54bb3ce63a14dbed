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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestMapAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0x0000), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x7fff), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x8000), memorymap.TileData)
	test.ExpectEquality(t, memorymap.MapAddress(0x97ff), memorymap.TileData)
	test.ExpectEquality(t, memorymap.MapAddress(0x9800), memorymap.TileMaps)
	test.ExpectEquality(t, memorymap.MapAddress(0x9fff), memorymap.TileMaps)
	test.ExpectEquality(t, memorymap.MapAddress(0xa000), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0xfe00), memorymap.OAM)
	test.ExpectEquality(t, memorymap.MapAddress(0xfe9f), memorymap.OAM)
	test.ExpectEquality(t, memorymap.MapAddress(0xfea0), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0xff0f), memorymap.Interrupts)
	test.ExpectEquality(t, memorymap.MapAddress(0xff40), memorymap.LCDRegisters)
	test.ExpectEquality(t, memorymap.MapAddress(0xff4b), memorymap.LCDRegisters)
	test.ExpectEquality(t, memorymap.MapAddress(0xff4c), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0xffff), memorymap.RAM)
}
