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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. Unlike fmt.Errorf()
// the pattern is kept alongside the values so that the kind of error can be
// tested for later with Is() and Has():
//
//	err := curated.Errorf("lcd: invalid address ($%04x)", address)
//
//	if curated.Is(err, "lcd: invalid address ($%04x)") {
//		...
//	}
//
// Packages that return curated errors export their patterns as constants so
// that callers do not need to repeat the string. For example, the lcd package
// exports InvalidAddress.
//
// Has() checks the entire chain, so an error wrapped by another curated error
// can still be found:
//
//	err := curated.Errorf("dmg: %v", lcdErr)
//	curated.Has(err, lcd.InvalidAddress) // true
//	curated.Is(err, lcd.InvalidAddress)  // false
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts. This means it is never a problem to wrap an error with a
// prefix that the wrapped error already has.
package curated
