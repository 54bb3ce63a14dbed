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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern for all errors returned by the package.
const ScriptError = "script: %v"

// Script is a Lua state connected to a DMG.
type Script struct {
	L   *lua.LState
	dmg *hardware.DMG

	// destination of the print() function
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type. A
// nil output writer discards anything printed by the script.
func NewScript(dmg *hardware.DMG, output io.Writer) *Script {
	if output == nil {
		output = io.Discard
	}

	scr := &Script{
		L:      lua.NewState(),
		dmg:    dmg,
		output: output,
	}

	for name, fn := range map[string]lua.LGFunction{
		"read":       scr.read,
		"write":      scr.write,
		"peek":       scr.peek,
		"poke":       scr.poke,
		"tick":       scr.tick,
		"nextline":   scr.nextline,
		"frame":      scr.frame,
		"scanline":   scr.scanline,
		"cycle":      scr.cycle,
		"state":      scr.state,
		"sprites":    scr.sprites,
		"interrupts": scr.interrupts,
		"screenshot": scr.screenshot,
		"log":        scr.log,
		"print":      scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua state.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	logger.Logf(logger.Allow, "script", "%s finished after %d frames", filename, scr.dmg.Frame())
	return nil
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (scr *Script) print(L *lua.LState) int {
	n := L.GetTop()
	s := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
