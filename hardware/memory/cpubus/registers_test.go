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

package cpubus_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestSymbols(t *testing.T) {
	test.ExpectEquality(t, len(cpubus.Symbols), len(cpubus.Address))
	for a, r := range cpubus.Symbols {
		test.ExpectEquality(t, cpubus.Address[r], a)
	}
	test.ExpectEquality(t, cpubus.Address[cpubus.DMA], 0xff46)
}

func TestLabel(t *testing.T) {
	test.ExpectEquality(t, cpubus.Label(0xff47), "BGP ($FF47)")
	test.ExpectEquality(t, cpubus.Label(0x1234), "$1234")
}
