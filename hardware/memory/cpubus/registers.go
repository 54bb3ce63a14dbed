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

package cpubus

import "fmt"

// Register represents a named address in the LCD register area.
type Register string

// List of valid Register values.
const (
	LCDC Register = "LCDC"
	STAT Register = "STAT"
	SCY  Register = "SCY"
	SCX  Register = "SCX"
	LY   Register = "LY"
	LYC  Register = "LYC"
	DMA  Register = "DMA"
	BGP  Register = "BGP"
	OBP0 Register = "OBP0"
	OBP1 Register = "OBP1"
	WY   Register = "WY"
	WX   Register = "WX"
	IF   Register = "IF"

	// address does not correspond with any known symbol
	NotACPUBusRegister Register = ""
)

// Symbols indexes all register symbols by address.
var Symbols = map[uint16]Register{
	0xff0f: IF,
	0xff40: LCDC,
	0xff41: STAT,
	0xff42: SCY,
	0xff43: SCX,
	0xff44: LY,
	0xff45: LYC,
	0xff46: DMA,
	0xff47: BGP,
	0xff48: OBP0,
	0xff49: OBP1,
	0xff4a: WY,
	0xff4b: WX,
}

// Address indexes all register addresses by canonical symbol.
var Address = map[Register]uint16{}

func init() {
	for k, v := range Symbols {
		Address[v] = k
	}
}

// Label returns a string suitable for log messages. The register name and
// address if the address is known, otherwise just the address.
func Label(address uint16) string {
	if r, ok := Symbols[address]; ok {
		return fmt.Sprintf("%s ($%04X)", r, address)
	}
	return fmt.Sprintf("$%04X", address)
}
