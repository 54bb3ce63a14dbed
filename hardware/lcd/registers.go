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

import (
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinel error patterns returned by the LCD.
const (
	InvalidAddress = "lcd: invalid address ($%04x)"
	DMAError       = "lcd: dma: %v"
)

// the value returned when reading a write-only register (or blocked memory).
const sentinel = uint8(0xff)

// target is everything at the end of an LCD address. the set is closed so
// the Read() and Write() functions switch on the value rather than
// delegating to an interface.
type target int

const (
	noTarget target = iota
	tileDataTarget
	tileMapsTarget
	oamTarget
	lcdcTarget
	statTarget
	scyTarget
	scxTarget
	lyTarget
	lycTarget
	dmaTarget
	bgpTarget
	obp0Target
	obp1Target
	wyTarget
	wxTarget
)

// the twelve registers in address order, starting at memorymap.OriginLCD.
var registerTargets = [...]target{
	lcdcTarget, statTarget, scyTarget, scxTarget, lyTarget, lycTarget,
	dmaTarget, bgpTarget, obp0Target, obp1Target, wyTarget, wxTarget,
}

func resolve(address uint16) target {
	switch memorymap.MapAddress(address) {
	case memorymap.TileData:
		return tileDataTarget
	case memorymap.TileMaps:
		return tileMapsTarget
	case memorymap.OAM:
		return oamTarget
	case memorymap.LCDRegisters:
		return registerTargets[address-memorymap.OriginLCD]
	}
	return noTarget
}

func (t target) writeOnly() bool {
	return t == dmaTarget || t == bgpTarget || t == obp0Target || t == obp1Target
}

// Owns returns true if the address is one that the LCD will respond to.
func (lcd *LCD) Owns(address uint16) bool {
	return resolve(address) != noTarget
}

func (lcd *LCD) regionFor(t target) *region {
	switch t {
	case tileDataTarget:
		return &lcd.tileData
	case tileMapsTarget:
		return &lcd.tileMaps
	case oamTarget:
		return &lcd.oam
	}
	return nil
}

// contended checks whether a region access should go ahead. the access is
// logged if contention logging is enabled.
func (lcd *LCD) contended(r *region, address uint16, write bool) bool {
	if r.enabled {
		return false
	}
	if write {
		logger.Logf(lcd, "lcd", "write to %s ($%04X) during %s", r.id, address, lcd.state)
	} else {
		logger.Logf(lcd, "lcd", "read of %s ($%04X) during %s", r.id, address, lcd.state)
	}
	return lcd.Prefs.BlockContention
}

// Read implements the cpubus.Memory interface.
func (lcd *LCD) Read(address uint16) (uint8, error) {
	t := resolve(address)
	if t == noTarget {
		return 0, curated.Errorf(InvalidAddress, address)
	}

	if t.writeOnly() {
		logger.Logf(logger.Allow, "lcd", "read of write-only register %s", cpubus.Label(address))
		return sentinel, nil
	}

	if r := lcd.regionFor(t); r != nil {
		if lcd.contended(r, address, false) {
			return sentinel, nil
		}
		return r.read(address), nil
	}

	return lcd.peekRegister(t), nil
}

// Write implements the cpubus.Memory interface. An error from the memory
// used as the DMA source is returned wrapped in a DMAError.
func (lcd *LCD) Write(address uint16, data uint8) error {
	t := resolve(address)
	if t == noTarget {
		return curated.Errorf(InvalidAddress, address)
	}

	if r := lcd.regionFor(t); r != nil {
		if lcd.contended(r, address, true) {
			return nil
		}
		r.write(address, data)
		return nil
	}

	switch t {
	case lyTarget:
		logger.Logf(logger.Allow, "lcd", "write to read-only register %s ignored", cpubus.Label(address))
		return nil
	case dmaTarget:
		lcd.dma = data
		return lcd.transfer(data)
	}

	lcd.pokeRegister(t, data)
	return nil
}

// Peek implements the cpubus.Debugger interface. Unlike Read() the true
// value of write-only registers is returned and nothing is logged.
func (lcd *LCD) Peek(address uint16) (uint8, error) {
	t := resolve(address)
	if t == noTarget {
		return 0, curated.Errorf(InvalidAddress, address)
	}
	if r := lcd.regionFor(t); r != nil {
		return r.read(address), nil
	}
	return lcd.peekRegister(t), nil
}

// Poke implements the cpubus.Debugger interface. Writing to the DMA register
// does not start a transfer and writing to LY changes the current scanline.
func (lcd *LCD) Poke(address uint16, data uint8) error {
	t := resolve(address)
	if t == noTarget {
		return curated.Errorf(InvalidAddress, address)
	}
	if r := lcd.regionFor(t); r != nil {
		r.write(address, data)
		return nil
	}
	switch t {
	case lyTarget:
		lcd.scanline = data % ScanlinesPerFrame
	case dmaTarget:
		lcd.dma = data
	default:
		lcd.pokeRegister(t, data)
	}
	return nil
}

func (lcd *LCD) peekRegister(t target) uint8 {
	switch t {
	case lcdcTarget:
		return lcd.control.read()
	case statTarget:
		return lcd.readStatus()
	case scyTarget:
		return lcd.scrollY
	case scxTarget:
		return lcd.scrollX
	case lyTarget:
		return lcd.scanline
	case lycTarget:
		return lcd.cmpScanline
	case dmaTarget:
		return lcd.dma
	case bgpTarget:
		return lcd.palettes[PaletteBG]
	case obp0Target:
		return lcd.palettes[PaletteOBP0]
	case obp1Target:
		return lcd.palettes[PaletteOBP1]
	case wyTarget:
		return lcd.windowY
	case wxTarget:
		return lcd.windowX
	}
	return sentinel
}

// pokeRegister handles the registers whose write has no side effect other
// than storing the value.
func (lcd *LCD) pokeRegister(t target, data uint8) {
	switch t {
	case lcdcTarget:
		lcd.control.write(data)
	case statTarget:
		lcd.status.write(data)
	case scyTarget:
		lcd.scrollY = data
	case scxTarget:
		lcd.scrollX = data
	case lycTarget:
		lcd.cmpScanline = data
	case bgpTarget:
		lcd.palettes[PaletteBG] = data
	case obp0Target:
		lcd.palettes[PaletteOBP0] = data
	case obp1Target:
		lcd.palettes[PaletteOBP1] = data
	case wyTarget:
		lcd.windowY = data
	case wxTarget:
		lcd.windowX = data
	}
}
