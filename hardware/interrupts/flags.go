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

package interrupts

import (
	"fmt"
	"strings"
)

// the upper three bits of IF are unused and always read as set.
const unusedBits = uint8(0xe0)

// Flags is the IF register. Requests set the corresponding bit, the CPU (or
// whatever stands in for it) clears the bit when it has serviced the request.
type Flags struct {
	value uint8

	// the number of times each kind has been raised. useful for tests and for
	// the run-mode summary
	Count [2]int
}

// Reset clears all pending requests and counters.
func (f *Flags) Reset() {
	f.value = 0
	f.Count = [2]int{}
}

// RaiseInterrupt implements the Raiser interface.
func (f *Flags) RaiseInterrupt(k Kind) {
	f.value |= 1 << k
	f.Count[k]++
}

// Pending returns true if the interrupt kind has been raised and not cleared.
func (f *Flags) Pending(k Kind) bool {
	return f.value&(1<<k) != 0
}

// Acknowledge clears the interrupt kind.
func (f *Flags) Acknowledge(k Kind) {
	f.value &^= 1 << k
}

// Read the IF register.
func (f *Flags) Read() uint8 {
	return f.value | unusedBits
}

// Write the IF register.
func (f *Flags) Write(data uint8) {
	f.value = data &^ unusedBits
}

func (f *Flags) String() string {
	s := strings.Builder{}
	for _, k := range []Kind{VBlank, LCDStat} {
		if s.Len() > 0 {
			s.WriteString(" ")
		}
		if f.Pending(k) {
			s.WriteString(fmt.Sprintf("%s*", k))
		} else {
			s.WriteString(k.String())
		}
		s.WriteString(fmt.Sprintf("(%d)", f.Count[k]))
	}
	return s.String()
}
