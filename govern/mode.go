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

package govern

import "strings"

// Mode indicates how the emulation is being presented.
type Mode int

// List of defined modes. The String() value of each mode is the name used to
// select it on the command line.
const (
	ModeNone Mode = iota
	ModeRun
	ModeTerminal
	ModeWindow
	ModeScript
	ModePerformance
	ModeVersion
)

// Modes lists every selectable mode. The first entry is the default.
var Modes = []Mode{ModeRun, ModeTerminal, ModeWindow, ModeScript, ModePerformance, ModeVersion}

func (m Mode) String() string {
	switch m {
	case ModeRun:
		return "RUN"
	case ModeTerminal:
		return "TERM"
	case ModeWindow:
		return "SDL"
	case ModeScript:
		return "SCRIPT"
	case ModePerformance:
		return "PERFORMANCE"
	case ModeVersion:
		return "VERSION"
	}

	return ""
}

// ParseMode returns the Mode with the name. The name is not case sensitive.
// ModeNone is returned if there is no such mode.
func ParseMode(name string) Mode {
	for _, m := range Modes {
		if strings.EqualFold(m.String(), name) {
			return m
		}
	}
	return ModeNone
}
