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

// Package clocks defines the constant values that define the speed of the main
// clock in the DMG console.
//
// The LCD is clocked at the same rate as the system clock. The CPU runs at a
// quarter of that rate.
package clocks

// Clock speeds in MHz.
const (
	DMG     = 4.194304
	DMG_CPU = DMG / 4
)

// FrameRate returns the number of frames per second for the number of clocks
// in a frame.
func FrameRate(clocksPerFrame int) float64 {
	return DMG * 1000000 / float64(clocksPerFrame)
}
