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

package memory

import (
	"fmt"
	"strings"
)

// RAM is the area of memory that is not handled by any other component.
type RAM struct {
	memory [0x10000]uint8
}

// Clear sets every byte to zero.
func (ram *RAM) Clear() {
	ram.memory = [0x10000]uint8{}
}

// Dump returns a hex dump of count bytes, starting at the nearest multiple of
// sixteen below address.
func (ram *RAM) Dump(address uint16, count int) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	start := int(address &^ 0x0f)
	end := int(address) + count
	if end > len(ram.memory) {
		end = len(ram.memory)
	}

	for y := start; y < end; y += 16 {
		s.WriteString(fmt.Sprintf("%03X- | ", y>>4))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[y+x]))
		}
		s.WriteString("\n")
	}

	return strings.Trim(s.String(), "\n")
}

// Peek implements the cpubus.Debugger interface.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.memory[address], nil
}

// Poke implements the cpubus.Debugger interface.
func (ram *RAM) Poke(address uint16, data uint8) error {
	ram.memory[address] = data
	return nil
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.memory[address], nil
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[address] = data
	return nil
}
