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

package lcd_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestDMA(t *testing.T) {
	l, mem, _ := newTestLCD()

	for i := 0; i < 0xa0; i++ {
		mem.data[0xc000+i] = uint8(i) ^ 0x5a
	}
	test.ExpectSuccess(t, l.Write(0xff46, 0xc0))

	for i := uint16(0); i < 0xa0; i++ {
		v, err := l.Peek(0xfe00 + i)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, uint8(i)^0x5a)
	}

	// bytes beyond the source block are not copied
	test.ExpectEquality(t, mem.data[0xc0a0], 0)

	// the register is write-only but the value can be peeked
	v, err := l.Read(0xff46)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)
	v, err = l.Peek(0xff46)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xc0)

	// sprites written by DMA are found by the OAM search
	for i := 0; i < 0xa0; i++ {
		mem.data[0xd000+i] = 0xff
	}
	mem.data[0xd000] = 0x00
	mem.data[0xd001] = 0x20
	test.ExpectSuccess(t, l.Write(0xff46, 0xd0))
	tick(l, lcd.CyclesPerFrame)
	test.ExpectEquality(t, len(l.Sprites()), 1)
	test.ExpectEquality(t, l.Sprites()[0].X, 0x20)
}

func TestDMAPoke(t *testing.T) {
	l, mem, _ := newTestLCD()

	mem.data[0xc000] = 0x99
	test.ExpectSuccess(t, l.Poke(0xff46, 0xc0))

	// a poke does not start the transfer
	v, err := l.Peek(0xfe00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)

	v, err = l.Peek(0xff46)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xc0)
}

func TestDMAError(t *testing.T) {
	l := lcd.NewLCD(brokenMemory{}, nil)

	err := l.Write(0xff46, 0xc0)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, lcd.DMAError), true)
	test.ExpectEquality(t, errors.Is(err, errBroken), true)
}

func TestDMAFailureLeavesOAM(t *testing.T) {
	mem := &faultyMemory{limit: 5}
	l := lcd.NewLCD(mem, nil)

	for i := 0; i < 0xa0; i++ {
		test.DemandSuccess(t, l.Poke(0xfe00+uint16(i), 0x11))
		mem.data[0xc000+i] = 0xaa
	}

	err := l.Write(0xff46, 0xc0)
	test.ExpectEquality(t, curated.Is(err, lcd.DMAError), true)
	test.ExpectEquality(t, errors.Is(err, errBroken), true)

	// none of the bytes read before the failure reach OAM
	for i := uint16(0); i < 0xa0; i++ {
		v, err := l.Peek(0xfe00 + i)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, 0x11, i)
	}

	// a complete transfer changes all of OAM
	mem.limit = 1000
	test.ExpectSuccess(t, l.Write(0xff46, 0xc0))
	v, err := l.Peek(0xfe9f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xaa)
}
