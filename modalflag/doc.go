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

// Package modalflag wraps the flag package in the standard library. It adds
// the idea of program modes, each mode having its own set of flags.
//
// Arguments are given to NewArgs() and then consumed by one or more calls to
// Parse(). Before each call to Parse() the flags and the sub-modes of the
// current layer are added. For example, a program with a RUN mode and a
// SCRIPT mode, with RUN being the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SCRIPT")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 60, "number of frames to run")
//		md.Parse()
//		...
//	}
//
// Sub-mode names are case insensitive and are always reported in upper
// case. If the first argument is not one of the sub-modes then the first
// sub-mode in the list is selected and the argument is left for the next
// layer.
//
// The -help flag is handled automatically. The help message lists the flags
// and sub-modes of the current layer.
package modalflag
