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
	_ "embed"

	"github.com/jetsetilly/gopherdmg/curated"
	lua "github.com/yuin/gopher-lua"
)

// TestCard is a scene that can be used when no other script is available.
//
//go:embed testcard.lua
var TestCard string

// onFrameHook is the name of the global function called by OnFrame().
const onFrameHook = "on_frame"

// OnFrame calls the script's on_frame() function, if it has one, with the
// frame number as the argument.
func (scr *Script) OnFrame(frame int) error {
	fn := scr.L.GetGlobal(onFrameHook)
	if fn.Type() != lua.LTFunction {
		return nil
	}
	err := scr.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(frame))
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}
