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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes handles command line arguments for programs with more than one mode
// of operation. The Output field should be set before calling Parse() or
// help messages will not be seen.
type Modes struct {
	Output io.Writer

	// flags for the current layer. a new flagset is created by NewArgs() and
	// NewMode()
	flags *flag.FlagSet

	args []string

	// index into args of the first argument for the current layer
	argsIdx int

	// sub-modes for the current layer. the first entry is the default
	subModes []string

	// every mode selected by Parse() since the last call to NewArgs()
	path []string

	// help text added to the help message for the current layer
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs resets the Modes type with a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new layer of flags and sub-modes. Arguments that have not
// yet been consumed are carried over.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
}

// Mode returns the most recently selected mode. The empty string if no mode
// has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected since the last call to NewArgs(),
// separated with a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// AdditionalHelp adds text to the help message for the current layer.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes to the current layer. The first sub-mode of the first call is
// the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing was successful and the caller should continue. if sub-modes
	// were added to the layer then Mode() will return the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to the Output field
	ParseHelp

	// the error value returned by Parse() explains the problem
	ParseError
)

// Parse the current layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	h := &helpBuffer{}
	md.flags.SetOutput(h)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err == flag.ErrHelp {
		if md.Output != nil {
			h.write(md.Output, md.Path(), md.subModes, md.additionalHelp)
		}
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	// unrecognised flags are allowed if there are sub-modes. the default mode
	// is selected and the flags are left for that mode to deal with
	if err != nil {
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	// skip over the flags consumed by this layer
	md.argsIdx = len(md.args) - md.flags.NArg()
	md.path = append(md.path, md.selectMode(strings.ToUpper(md.flags.Arg(0))))

	return ParseContinue, nil
}

// selectMode returns the sub-mode matching the argument. the argument is
// consumed if it matches.
func (md *Modes) selectMode(arg string) string {
	for _, m := range md.subModes {
		if m == arg {
			md.argsIdx++
			return m
		}
	}
	return md.subModes[0]
}

// RemainingArgs returns the arguments that are not flags or a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument from RemainingArgs(). The empty
// string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for every flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
