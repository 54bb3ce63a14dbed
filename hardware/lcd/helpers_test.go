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

	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
)

// flatMemory is a 64K RAM used as the source for DMA transfers.
type flatMemory struct {
	data [0x10000]uint8
}

func (m *flatMemory) Read(address uint16) (uint8, error) {
	return m.data[address], nil
}

func (m *flatMemory) Write(address uint16, data uint8) error {
	m.data[address] = data
	return nil
}

// brokenMemory fails every access.
type brokenMemory struct{}

var errBroken = errors.New("bus fault")

func (m brokenMemory) Read(address uint16) (uint8, error) {
	return 0, errBroken
}

func (m brokenMemory) Write(address uint16, data uint8) error {
	return errBroken
}

// faultyMemory reads from flatMemory until the limit number of reads have
// been made. every read after that fails.
type faultyMemory struct {
	flatMemory
	limit int
	reads int
}

func (m *faultyMemory) Read(address uint16) (uint8, error) {
	if m.reads >= m.limit {
		return 0, errBroken
	}
	m.reads++
	return m.flatMemory.Read(address)
}

func newTestLCD() (*lcd.LCD, *flatMemory, *interrupts.Flags) {
	mem := &flatMemory{}
	irq := &interrupts.Flags{}
	return lcd.NewLCD(mem, irq), mem, irq
}

func tick(l *lcd.LCD, n int) {
	for i := 0; i < n; i++ {
		l.Tick()
	}
}

// must is used for writes that are known to be to valid addresses.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
