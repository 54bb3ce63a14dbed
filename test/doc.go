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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and end the test
// immediately. Both families accept optional tags which are prefixed to the
// failure message. This is useful when the test is inside a loop and the
// iteration needs identifying.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// type:
//
//	bool -> true is success
//	error -> nil is success
//
// An untyped nil is treated as success. This is because of how errors are
// usually handled (nil indicating no error) and is the only sensible
// interpretation.
//
// The CompareWriter type implements io.Writer and can be used to capture
// output, for example from the logger package, for comparison.
package test
