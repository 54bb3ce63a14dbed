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

package script

import (
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/screenshot"
	lua "github.com/yuin/gopher-lua"
)

// checkAddress returns the numbered argument as a 16-bit address. An error
// is raised in the Lua state if the value is out of range.
func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (scr *Script) read(L *lua.LState) int {
	v, err := scr.dmg.Mem.Read(checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) write(L *lua.LState) int {
	err := scr.dmg.Mem.Write(checkAddress(L, 1), checkByte(L, 2))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.dmg.Mem.Peek(checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	err := scr.dmg.Mem.Poke(checkAddress(L, 1), checkByte(L, 2))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) tick(L *lua.LState) int {
	n := L.OptInt(1, 1)
	L.Push(lua.LNumber(scr.dmg.StepClocks(n)))
	return 1
}

func (scr *Script) nextline(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for i := 0; i < n; i++ {
		scr.dmg.StepScanline()
	}
	return 0
}

func (scr *Script) frame(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if err := scr.dmg.RunForFrameCount(n, nil); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) scanline(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dmg.LCD.Scanline()))
	return 1
}

func (scr *Script) cycle(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dmg.LCD.Cycle()))
	return 1
}

func (scr *Script) state(L *lua.LState) int {
	L.Push(lua.LString(scr.dmg.LCD.State().String()))
	return 1
}

func (scr *Script) sprites(L *lua.LState) int {
	tbl := L.NewTable()
	for _, s := range scr.dmg.LCD.Sprites() {
		st := L.NewTable()
		st.RawSetString("index", lua.LNumber(s.Index))
		st.RawSetString("x", lua.LNumber(s.X))
		st.RawSetString("y", lua.LNumber(s.Y))
		st.RawSetString("tile", lua.LNumber(s.Tile))
		st.RawSetString("palette", lua.LString(s.Palette.String()))
		tbl.Append(st)
	}
	L.Push(tbl)
	return 1
}

// interrupts returns the interrupt counts and pending flags. the pending
// flags are cleared.
func (scr *Script) interrupts(L *lua.LState) int {
	irq := scr.dmg.IRQ
	tbl := L.NewTable()
	tbl.RawSetString("vblank", lua.LNumber(irq.Count[interrupts.VBlank]))
	tbl.RawSetString("stat", lua.LNumber(irq.Count[interrupts.LCDStat]))
	tbl.RawSetString("vblank_pending", lua.LBool(irq.Pending(interrupts.VBlank)))
	tbl.RawSetString("stat_pending", lua.LBool(irq.Pending(interrupts.LCDStat)))
	irq.Acknowledge(interrupts.VBlank)
	irq.Acknowledge(interrupts.LCDStat)
	L.Push(tbl)
	return 1
}

func (scr *Script) screenshot(L *lua.LState) int {
	path := L.CheckString(1)
	scale := L.OptInt(2, 1)
	if err := screenshot.WriteFile(path, scr.dmg.LCD.Framebuffer(), scale); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}
