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

package memorymap

// Area represents the different areas of memory.
type Area int

// The different memory areas in the DMG that are of interest.
const (
	RAM Area = iota
	TileData
	TileMaps
	OAM
	LCDRegisters
	Interrupts
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case TileData:
		return "Tile Data"
	case TileMaps:
		return "Tile Maps"
	case OAM:
		return "OAM"
	case LCDRegisters:
		return "LCD Registers"
	case Interrupts:
		return "Interrupts"
	}
	return "undefined"
}

// The origin and memory top for each area of memory.
//
// Implementations of the different memory areas may need to drag the address
// down into the the range of an array. This can be done with (address &
// Mask) where a mask is provided, or with subtraction of the origin.
const (
	OriginTileData = uint16(0x8000)
	MemtopTileData = uint16(0x97ff)
	OriginTileMaps = uint16(0x9800)
	MemtopTileMaps = uint16(0x9fff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginLCD      = uint16(0xff40)
	MemtopLCD      = uint16(0xff4b)
)

// Masks that translate an address into an index into the backing array of an
// area.
const (
	MaskTileData = uint16(0x1fff)
	MaskTileMaps = uint16(0x07ff)
	MaskOAM      = uint16(0x00ff)
)

// InterruptFlags is the address of the IF register.
const InterruptFlags = uint16(0xff0f)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// MapAddress returns the area the address belongs to. Addresses that belong
// to none of the areas of interest are reported as RAM.
//
// Note that MemtopOAM is not the top of the region the hardware reserves for
// OAM. Addresses 0xfea0 to 0xfeff are unusable on the real hardware and are
// treated as RAM here.
func MapAddress(address uint16) Area {
	switch {
	case address >= OriginTileData && address <= MemtopTileData:
		return TileData
	case address >= OriginTileMaps && address <= MemtopTileMaps:
		return TileMaps
	case address >= OriginOAM && address <= MemtopOAM:
		return OAM
	case address >= OriginLCD && address <= MemtopLCD:
		return LCDRegisters
	case address == InterruptFlags:
		return Interrupts
	}
	return RAM
}
