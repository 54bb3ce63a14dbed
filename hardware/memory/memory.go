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

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// Sentinel error patterns.
const (
	NotAttached = "memory: nothing attached to %s ($%04x)"
)

// Chip is a component that owns one or more areas of memory. It must respond
// to both the CPU bus and the debugger bus.
type Chip interface {
	cpubus.Memory
	cpubus.Debugger
}

// Memory is the DMG memory map.
type Memory struct {
	RAM *RAM

	// the interrupt request register
	IF *interrupts.Flags

	// the LCD is attached after the memory is created because it uses the
	// memory as the source for DMA transfers
	lcd Chip
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(irq *interrupts.Flags) *Memory {
	return &Memory{
		RAM: &RAM{},
		IF:  irq,
	}
}

// AttachLCD connects the LCD to the memory. A nil value detaches the LCD.
func (mem *Memory) AttachLCD(lcd Chip) {
	mem.lcd = lcd
}

func (mem *Memory) String() string {
	return fmt.Sprintf("IF=%02x %s", mem.IF.Read(), mem.IF)
}

// Clear the contents of RAM and the IF register. The LCD is not affected.
func (mem *Memory) Clear() {
	mem.RAM.Clear()
	mem.IF.Reset()
}

// route returns the component that handles the address when accessed via the
// CPU bus. A nil value with a nil error means the address is the IF register.
func (mem *Memory) route(address uint16) (cpubus.Memory, error) {
	switch area := memorymap.MapAddress(address); area {
	case memorymap.TileData, memorymap.TileMaps, memorymap.OAM, memorymap.LCDRegisters:
		if mem.lcd == nil {
			return nil, curated.Errorf(NotAttached, area, address)
		}
		return mem.lcd, nil
	case memorymap.Interrupts:
		return nil, nil
	}
	return mem.RAM, nil
}

// debugRoute is the equivalent of route() for the debugger bus.
func (mem *Memory) debugRoute(address uint16) (cpubus.Debugger, error) {
	switch area := memorymap.MapAddress(address); area {
	case memorymap.TileData, memorymap.TileMaps, memorymap.OAM, memorymap.LCDRegisters:
		if mem.lcd == nil {
			return nil, curated.Errorf(NotAttached, area, address)
		}
		return mem.lcd, nil
	case memorymap.Interrupts:
		return nil, nil
	}
	return mem.RAM, nil
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	c, err := mem.route(address)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return mem.IF.Read(), nil
	}
	return c.Read(address)
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	c, err := mem.route(address)
	if err != nil {
		return err
	}
	if c == nil {
		mem.IF.Write(data)
		return nil
	}
	return c.Write(address, data)
}

// Peek implements the cpubus.Debugger interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	c, err := mem.debugRoute(address)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return mem.IF.Read(), nil
	}
	return c.Peek(address)
}

// Poke implements the cpubus.Debugger interface.
func (mem *Memory) Poke(address uint16, data uint8) error {
	c, err := mem.debugRoute(address)
	if err != nil {
		return err
	}
	if c == nil {
		mem.IF.Write(data)
		return nil
	}
	return c.Poke(address, data)
}
