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

// Region identifies one of the areas of memory owned by the LCD.
type Region int

// List of valid Region values.
const (
	TileData Region = iota
	TileMaps
	OAM
)

func (r Region) String() string {
	switch r {
	case TileData:
		return "tile data"
	case TileMaps:
		return "tile maps"
	case OAM:
		return "OAM"
	}
	return "unknown region"
}

// region is a fixed size area of memory. the enabled flag is false while the
// LCD is using the memory.
type region struct {
	id      Region
	data    []uint8
	origin  uint16
	mask    uint16
	enabled bool
}

func newRegion(id Region, size int, origin uint16, mask uint16) region {
	return region{
		id:      id,
		data:    make([]uint8, size),
		origin:  origin,
		mask:    mask,
		enabled: true,
	}
}

func (r *region) offset(address uint16) uint16 {
	return (address - r.origin) & r.mask
}

func (r *region) read(address uint16) uint8 {
	return r.data[r.offset(address)]
}

func (r *region) write(address uint16, data uint8) {
	r.data[r.offset(address)] = data
}
