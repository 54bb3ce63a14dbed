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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/test"
)

func newMemory() (*memory.Memory, *lcd.LCD) {
	irq := &interrupts.Flags{}
	mem := memory.NewMemory(irq)
	l := lcd.NewLCD(mem, irq)
	mem.AttachLCD(l)
	return mem, l
}

func readData(t *testing.T, mem *memory.Memory, address uint16, expected uint8) {
	t.Helper()
	d, err := mem.Read(address)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, expected)
}

func TestRAM(t *testing.T) {
	mem, _ := newMemory()

	for _, a := range []uint16{0x0000, 0x7fff, 0xa000, 0xc000, 0xfea0, 0xff00, 0xff4c, 0xff80, 0xffff} {
		test.ExpectSuccess(t, mem.Write(a, uint8(a>>8)))
		readData(t, mem, a, uint8(a>>8))
	}

	// debugger bus sees the same RAM
	d, err := mem.Peek(0xc000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0xc0)
	test.ExpectSuccess(t, mem.Poke(0xc000, 0x01))
	readData(t, mem, 0xc000, 0x01)

	mem.Clear()
	readData(t, mem, 0xc000, 0x00)
}

func TestLCDRouting(t *testing.T) {
	mem, l := newMemory()

	test.ExpectSuccess(t, mem.Write(0x8000, 0x12))
	test.ExpectSuccess(t, mem.Write(0x9fff, 0x34))
	test.ExpectSuccess(t, mem.Write(0xfe9f, 0x56))

	for _, c := range []struct {
		address uint16
		value   uint8
	}{
		{0x8000, 0x12},
		{0x9fff, 0x34},
		{0xfe9f, 0x56},
	} {
		d, err := l.Peek(c.address)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, d, c.value)
		readData(t, mem, c.address, c.value)
	}

	// LCDC after reset
	readData(t, mem, 0xff40, 0x92)

	// write-only registers read as 0xff through the cpu bus but not through
	// the debugger bus
	test.ExpectSuccess(t, mem.Write(0xff47, 0xe4))
	readData(t, mem, 0xff47, 0xff)
	d, err := mem.Peek(0xff47)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0xe4)
}

func TestInterruptRegister(t *testing.T) {
	mem, _ := newMemory()

	readData(t, mem, 0xff0f, 0xe0)
	mem.IF.RaiseInterrupt(interrupts.VBlank)
	readData(t, mem, 0xff0f, 0xe1)
	mem.IF.RaiseInterrupt(interrupts.LCDStat)
	readData(t, mem, 0xff0f, 0xe3)

	test.ExpectSuccess(t, mem.Write(0xff0f, 0x02))
	readData(t, mem, 0xff0f, 0xe2)
	test.ExpectEquality(t, mem.IF.Pending(interrupts.VBlank), false)
	test.ExpectEquality(t, mem.IF.Pending(interrupts.LCDStat), true)

	test.ExpectSuccess(t, mem.Poke(0xff0f, 0x00))
	d, err := mem.Peek(0xff0f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0xe0)
}

func TestDMAThroughMemory(t *testing.T) {
	mem, l := newMemory()

	for i := uint16(0); i < 0xa0; i++ {
		test.ExpectSuccess(t, mem.Write(0xc100+i, uint8(i)))
	}
	test.ExpectSuccess(t, mem.Write(0xff46, 0xc1))

	for i := uint16(0); i < 0xa0; i++ {
		d, err := l.Peek(0xfe00 + i)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, d, uint8(i))
	}
}

func TestNotAttached(t *testing.T) {
	mem := memory.NewMemory(&interrupts.Flags{})

	_, err := mem.Read(0x8000)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, memory.NotAttached), true)

	err = mem.Write(0xff40, 0x00)
	test.ExpectEquality(t, curated.Is(err, memory.NotAttached), true)

	_, err = mem.Peek(0xfe00)
	test.ExpectEquality(t, curated.Is(err, memory.NotAttached), true)

	// RAM and IF are always available
	test.ExpectSuccess(t, mem.Write(0xc000, 0x01))
	test.ExpectSuccess(t, mem.Write(0xff0f, 0x01))
}

func TestDump(t *testing.T) {
	mem, _ := newMemory()
	test.ExpectSuccess(t, mem.Write(0xc012, 0xab))

	s := mem.RAM.Dump(0xc012, 16)
	lines := strings.Split(s, "\n")
	test.DemandEquality(t, len(lines), 4)
	test.ExpectEquality(t, strings.HasPrefix(lines[2], "C01- | "), true)
	test.ExpectEquality(t, strings.Contains(lines[2], " 00 ab 00"), true)
	test.ExpectEquality(t, strings.HasPrefix(lines[3], "C02- | "), true)
}
